package shared

// Asynq task types.
const (
	TypeProcessPostImage      = "post:process_image"
	TypeRefreshTrendingTopics = "ai:refresh_topics"
)

// Asynq queue names.
const (
	QueueDefault = "default"
	QueueImages  = "images"
)

// Cache keys shared between the API and the worker. Listing keys share
// the "listings:" prefix so post writes can invalidate them in one sweep.
const (
	CacheKeyTrendingTopics  = "ai:trending_topics"
	CacheKeyPostsBulk       = "listings:posts"
	CacheKeyCategories      = "listings:categories"
	CacheKeyListingsPattern = "listings:*"
)
