// Package feed defines the podcast data model and fetches syndication feeds into it.
package feed

// Episode is a single downloadable item of a podcast feed.
type Episode struct {
	Title    string `json:"title" jsonschema:"description=Title of the episode as published in the feed."`
	MediaURL string `json:"media_url" jsonschema:"description=Locator of the episode media file."`
}

func (e *Episode) String() string {
	return e.Title
}

// Podcast is a parsed feed. Episodes keep the feed's published order.
type Podcast struct {
	Title    string     `json:"title" jsonschema:"description=Display title of the feed."`
	URL      string     `json:"url" jsonschema:"description=Feed URL the podcast was fetched from."`
	Episodes []*Episode `json:"episodes" jsonschema:"description=Episodes in feed order."`
}

func (p *Podcast) String() string {
	return p.Title
}

// Catalog holds every podcast fetched at startup, in configured URL order.
// It is never modified after it has been built.
type Catalog struct {
	Podcasts []*Podcast `json:"podcasts" jsonschema:"description=Podcasts in configured feed order."`
}

// EpisodeCount returns the number of episodes across all podcasts.
func (c *Catalog) EpisodeCount() (n int) {
	for _, p := range c.Podcasts {
		n += len(p.Episodes)
	}
	return
}
