package constant

// DefaultFeeds is the feed list used when no other is configured.
var DefaultFeeds = []string{
	"https://feeds.pacific-content.com/commandlineheroes",
	"http://feeds.codenewbie.org/cnpodcast.xml",
	"http://feeds.codenewbie.org/basecs_podcast.xml",
	"https://cppcast.com/episode/index.xml",
	"https://feeds.simplecast.com/gvtxUiIf",
	"https://lexfridman.com/category/ai/feed",
}
