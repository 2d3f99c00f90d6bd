package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/datasources/breaker"
	"github.com/jbeshir/reelfeed/internal/datasources/gcs"
	"github.com/jbeshir/reelfeed/internal/datasources/mysql"
	"github.com/jbeshir/reelfeed/internal/datasources/openai"
	"github.com/jbeshir/reelfeed/internal/datasources/pinecone"
	"github.com/jbeshir/reelfeed/internal/datasources/voyageai"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/transport/web/router"
	"github.com/jbeshir/reelfeed/internal/transport/web/server"
	svix "github.com/svix/svix-webhooks/go"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	tasteConfig, err := TasteConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	dataset, err := SetupDatasetRepository(ctx, tasteConfig.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	similarity, err := SetupSimilarityRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	embedder, err := setupEmbedder(ctx, tasteConfig.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	blobStorer, err := setupBlobStorer(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up blob storage: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	webhookVerifier, err := svix.NewWebhook(MustGetEnvAsString(ctx, "IDENTITY_WEBHOOK_SECRET"))
	if err != nil {
		return nil, fmt.Errorf("setting up identity webhook verifier: %w", err)
	}

	updateTasteProfileCmd := command.NewUpdateTasteProfile(dataset, tasteConfig)

	//nolint:gosec // cold-start noise does not need a cryptographic source
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	ensureUserCmd := command.NewEnsureUser(dataset, tasteConfig, rng)

	toggleLikeCmd := command.NewToggleLike(dataset, dataset, dataset, updateTasteProfileCmd)
	rankFeedCmd := command.NewRankFeed(dataset, dataset, dataset, similarity)
	listSimilarPostsCmd := command.NewListSimilarPosts(dataset, dataset, dataset, similarity)
	uploadPostCmd := command.NewUploadPost(blobStorer, embedder, dataset, similarity, tasteConfig.Dimensions)

	httpRouter, err := router.MakeRouter(
		dataset,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		GetEnvAsDurationOrDefault(ctx, "RSS_FEED_CACHE_MAX_AGE", 5*time.Minute),
		authMiddleware,
		webhookVerifier,
		rankFeedCmd,
		listSimilarPostsCmd,
		toggleLikeCmd,
		uploadPostCmd,
		ensureUserCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupRefreshTasteProfiles wires the batch job that catches up pending taste updates.
func SetupRefreshTasteProfiles(ctx context.Context) (*command.RefreshTasteProfiles, error) {
	tasteConfig, err := TasteConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	dataset, err := SetupDatasetRepository(ctx, tasteConfig.Dimensions)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	return command.NewRefreshTasteProfiles(
		dataset,
		command.NewUpdateTasteProfile(dataset, tasteConfig),
		tasteConfig.LikeThreshold,
	), nil
}

func SetupDatasetRepository(ctx context.Context, dimensions int) (datasources.DatasetRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db, dimensions), nil
}

func SetupSimilarityRepository(ctx context.Context) (datasources.SimilarityRepository, error) {
	switch driver := GetEnvAsStringOrDefault("SIMILARITY_DRIVER", "null"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupEmbedder(ctx context.Context, dimensions int) (datasources.Embedder, error) {
	logger := domain.LoggerFromContext(ctx)

	var embedder datasources.Embedder
	switch driver := MustGetEnvAsString(ctx, "EMBEDDING_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "openai":
		embedder = openai.NewClient(
			MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			GetEnvAsStringOrDefault("OPENAI_EMBEDDING_MODEL", openai.DefaultModel),
			dimensions,
		)
	case "voyageai":
		embedder = voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			GetEnvAsStringOrDefault("VOYAGEAI_MODEL", "voyage-3-large"),
			dimensions,
		)
	default:
		return nil, fmt.Errorf("unknown embedding driver [%s]", driver)
	}

	return breaker.NewEmbedder(embedder, breaker.DefaultConfig(), logger), nil
}

func setupBlobStorer(ctx context.Context) (datasources.BlobStorer, error) {
	logger := domain.LoggerFromContext(ctx)

	switch driver := MustGetEnvAsString(ctx, "BLOB_DRIVER"); driver {
	case "null":
		return datasources.NullBlobStorer{}, nil
	case "gcs":
		store, err := gcs.NewBlobStore(
			ctx,
			MustGetEnvAsString(ctx, "GCS_BUCKET_NAME"),
			GetEnvAsStringOrDefault("GCS_PUBLIC_BASE_URL", ""),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to GCS: %w", err)
		}
		return breaker.NewBlobStorer(store, breaker.DefaultConfig(), logger), nil
	default:
		return nil, fmt.Errorf("unknown blob driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "jwks":
			v, err := router.NewJWKSValidator(
				MustGetEnvAsString(ctx, "AUTH_JWKS_ISSUER"),
				MustGetEnvAsString(ctx, "AUTH_JWKS_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating JWKS validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
