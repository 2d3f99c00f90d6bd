package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reelfeed/internal/command"
	"github.com/jbeshir/reelfeed/internal/datasources"
	"github.com/jbeshir/reelfeed/internal/domain"
	"github.com/jbeshir/reelfeed/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func MakeRouter(
	dataset datasources.DatasetRepository,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	webhookVerifier controller.WebhookVerifier,
	rankFeedCmd command.Command[command.RankFeedRequest, []domain.FeedItem],
	listSimilarPostsCmd command.Command[command.ListSimilarPostsRequest, []domain.FeedItem],
	toggleLikeCmd command.Command[command.ToggleLikeRequest, command.ToggleLikeResult],
	uploadPostCmd command.Command[command.UploadPostRequest, domain.Post],
	ensureUserCmd command.Command[domain.Identity, command.EnsureUserResult],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/feed", controller.FeedGet{
		RankCmd: rankFeedCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/me", requireAuthMiddleware(controller.UserGet{
		Getter: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/posts", requireAuthMiddleware(controller.PostCreate{
		UploadCmd:      uploadPostCmd,
		MaxUploadBytes: controller.DefaultMaxUploadBytes,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/like", requireAuthMiddleware(controller.PostLikeToggle{
		ToggleCmd: toggleLikeCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/posts/{post_id}/similar", controller.SimilarPostsList{
		ListCmd: listSimilarPostsCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/webhooks/identity", controller.IdentityWebhook{
		Verifier:  webhookVerifier,
		EnsureCmd: ensureUserCmd,
	}).Methods(http.MethodPost)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Lister:          dataset,
			CacheMaxAge:     rssCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet)
	}

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
