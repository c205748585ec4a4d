package goquery

import (
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// profiles is the static, process-wide framework fingerprint registry.
// Profiles are declared in a fixed order; ties between equal detection
// scores keep this order. The slice and everything it references is
// read-only after init and safe for concurrent readers.
//
// Signal weights are empirical: 40 for markers unique to one framework
// (generator tags, branded CDNs), 20-30 for strong structural markers,
// 10-15 for markers that other stacks occasionally share.
var profiles = []scrapesuite.Profile{
	{
		Name: "wordpress",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "wordpress", Weight: 40},
			{Kind: scrapesuite.SignalScript, Pattern: "wp-content", Weight: 30},
			{Kind: scrapesuite.SignalScript, Pattern: "wp-includes", Weight: 20},
			{Kind: scrapesuite.SignalClass, Pattern: "wp-block", Weight: 20},
			{Kind: scrapesuite.SignalClass, Pattern: "hentry", Weight: 15},
		},
		ItemHints: []string{"article.post", ".hentry", "li.wp-block-post", ".post"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:       {".entry-title a", ".entry-title"},
			scrapesuite.FieldURL:         {".entry-title a@href", "a.more-link@href"},
			scrapesuite.FieldDate:        {"time.entry-date@datetime", ".posted-on time@datetime", ".entry-date"},
			scrapesuite.FieldAuthor:      {".byline .author a", ".author.vcard a", ".byline a"},
			scrapesuite.FieldCategory:    {".cat-links a", ".entry-categories a"},
			scrapesuite.FieldImage:       {".post-thumbnail img@src", "img.wp-post-image@src"},
			scrapesuite.FieldDescription: {".entry-summary", ".entry-excerpt"},
		},
	},
	{
		Name: "drupal",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "drupal", Weight: 40},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-drupal-selector", Weight: 30},
			{Kind: scrapesuite.SignalClass, Pattern: "node--type", Weight: 25},
			{Kind: scrapesuite.SignalScript, Pattern: "/sites/default/files", Weight: 15},
		},
		ItemHints: []string{".views-row", "article.node", ".node--type-article"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:  {".node__title a", ".node__title", "h2 a"},
			scrapesuite.FieldURL:    {".node__title a@href", "h2 a@href"},
			scrapesuite.FieldDate:   {".node__meta time@datetime", "time@datetime"},
			scrapesuite.FieldAuthor: {".node__meta .username", ".field--name-uid a"},
		},
	},
	{
		Name: "joomla",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "joomla", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "com-content", Weight: 25},
			{Kind: scrapesuite.SignalScript, Pattern: "/media/system/js", Weight: 20},
		},
		ItemHints: []string{".com-content-category-blog__item", ".blog-item", ".item-page"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:  {".item-title a", "h2.item-title", "h2 a"},
			scrapesuite.FieldURL:    {".item-title a@href", "h2 a@href"},
			scrapesuite.FieldDate:   {"time.published@datetime", ".article-info time@datetime"},
			scrapesuite.FieldAuthor: {".created-by", ".article-info .createdby"},
		},
	},
	{
		Name: "shopify",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalScript, Pattern: "cdn.shopify.com", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "shopify-section", Weight: 30},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-shopify", Weight: 20},
		},
		ItemHints: []string{".product-card", "li.grid__item", ".product-item", ".card-wrapper"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle: {".product-card__title", ".card__heading a", ".product-item__title"},
			scrapesuite.FieldURL:   {"a.product-card__link@href", ".card__heading a@href", "a.product-item__link@href"},
			scrapesuite.FieldPrice: {".price-item--regular", ".price__regular", ".product-card__price", ".price"},
			scrapesuite.FieldImage: {".product-card__image img@src", ".card__media img@src", "img@src"},
		},
	},
	{
		Name: "squarespace",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "squarespace", Weight: 40},
			{Kind: scrapesuite.SignalScript, Pattern: "squarespace.com", Weight: 25},
			{Kind: scrapesuite.SignalClass, Pattern: "sqs-block", Weight: 25},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-block-type", Weight: 10},
		},
		ItemHints: []string{".blog-item", ".summary-item", "article.blog-basic-grid--container"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle: {".blog-title a", ".summary-title a", ".blog-title"},
			scrapesuite.FieldURL:   {".blog-title a@href", "a.summary-title-link@href"},
			scrapesuite.FieldDate:  {".blog-date", ".summary-metadata-item--date"},
			scrapesuite.FieldImage: {"img.summary-thumbnail-image@data-src", "img@data-src"},
		},
	},
	{
		Name: "wix",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "wix.com", Weight: 40},
			{Kind: scrapesuite.SignalScript, Pattern: "static.parastorage.com", Weight: 30},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-hook", Weight: 10},
		},
		ItemHints: []string{"[data-hook=post-list-item]", "[data-hook=gallery-item-container]"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:  {"[data-hook=post-title]", "h2 a"},
			scrapesuite.FieldURL:    {"[data-hook=post-title] a@href", "a@href"},
			scrapesuite.FieldDate:   {"[data-hook=time-ago]", "time@datetime"},
			scrapesuite.FieldAuthor: {"[data-hook=user-name]"},
		},
	},
	{
		Name: "ghost",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "ghost", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "post-card", Weight: 25},
			{Kind: scrapesuite.SignalClass, Pattern: "gh-card", Weight: 25},
		},
		ItemHints: []string{"article.post-card", ".gh-card", ".post-card"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:       {".post-card-title", ".gh-card-title", "h2"},
			scrapesuite.FieldURL:         {"a.post-card-content-link@href", "a.gh-card-link@href"},
			scrapesuite.FieldDate:        {"time.post-card-meta-date@datetime", ".gh-card-meta time@datetime"},
			scrapesuite.FieldAuthor:      {".post-card-meta .author-name", ".gh-card-author"},
			scrapesuite.FieldImage:       {"img.post-card-image@src", ".gh-card-image img@src"},
			scrapesuite.FieldDescription: {".post-card-excerpt", ".gh-card-excerpt"},
		},
	},
	{
		Name: "mediawiki",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "mediawiki", Weight: 40},
			{Kind: scrapesuite.SignalScript, Pattern: "load.php", Weight: 30},
			{Kind: scrapesuite.SignalClass, Pattern: "mw-parser-output", Weight: 20},
		},
		ItemHints: []string{"li.mw-search-result", ".mw-search-result", "li.mw-contributions-list"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:       {".mw-search-result-heading a", ".mw-search-result-heading"},
			scrapesuite.FieldURL:         {".mw-search-result-heading a@href"},
			scrapesuite.FieldDescription: {".searchresult"},
			scrapesuite.FieldDate:        {".mw-search-result-data"},
		},
	},
	{
		Name: "discourse",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "discourse", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "topic-list", Weight: 30},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-topic-id", Weight: 25},
		},
		ItemHints: []string{"tr.topic-list-item", ".topic-list-item"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:    {"a.title", ".main-link a.title"},
			scrapesuite.FieldURL:      {"a.title@href"},
			scrapesuite.FieldAuthor:   {".posters a@data-user-card", ".posters a@title"},
			scrapesuite.FieldScore:    {".likes", ".num.likes"},
			scrapesuite.FieldDate:     {".activity a@title", ".age"},
			scrapesuite.FieldCategory: {".category-name", ".badge-category__name"},
		},
	},
	{
		Name: "phpbb",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "phpbb", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "topiclist", Weight: 30},
			{Kind: scrapesuite.SignalScript, Pattern: "styles/prosilver", Weight: 20},
		},
		ItemHints: []string{"ul.topiclist li.row", "li.row"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:  {"a.topictitle"},
			scrapesuite.FieldURL:    {"a.topictitle@href"},
			scrapesuite.FieldAuthor: {".topic-poster a.username", ".username"},
			scrapesuite.FieldDate:   {".topic-poster time@datetime", "time@datetime"},
			scrapesuite.FieldScore:  {".posts"},
		},
	},
	{
		Name: "hugo",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "hugo", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "post-entry", Weight: 15},
		},
		ItemHints: []string{"article.post-entry", ".post-entry", ".archive-entry"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:       {".entry-header h2", ".post-title a", "h2 a"},
			scrapesuite.FieldURL:         {"a.entry-link@href", "h2 a@href"},
			scrapesuite.FieldDate:        {".entry-footer time@datetime", "time@datetime"},
			scrapesuite.FieldDescription: {".entry-content"},
		},
	},
	{
		Name: "jekyll",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalGenerator, Pattern: "jekyll", Weight: 40},
			{Kind: scrapesuite.SignalClass, Pattern: "post-list", Weight: 15},
		},
		ItemHints: []string{"ul.post-list li", ".post-list li"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle: {"a.post-link", "h3 a"},
			scrapesuite.FieldURL:   {"a.post-link@href", "h3 a@href"},
			scrapesuite.FieldDate:  {".post-meta", "time@datetime"},
		},
	},
	{
		Name: "nextjs",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalScript, Pattern: "/_next/static", Weight: 40},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-nimg", Weight: 20},
			{Kind: scrapesuite.SignalScript, Pattern: "__NEXT_DATA__", Weight: 15},
		},
		ItemHints: []string{"article", "li.card"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldImage: {"img[data-nimg]@src", "img@src"},
		},
	},
	{
		Name: "nuxt",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalScript, Pattern: "/_nuxt/", Weight: 40},
			{Kind: scrapesuite.SignalDataAttr, Pattern: "data-server-rendered", Weight: 15},
		},
		ItemHints: []string{"article", "li.card"},
	},
	{
		Name: "gatsby",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalScript, Pattern: "/page-data/", Weight: 35},
			{Kind: scrapesuite.SignalClass, Pattern: "gatsby-image-wrapper", Weight: 25},
			{Kind: scrapesuite.SignalScript, Pattern: "gatsby", Weight: 10},
		},
		ItemHints: []string{"article", ".post-card"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldImage: {".gatsby-image-wrapper img@src", "img@src"},
		},
	},
	{
		// Bootstrap is a component framework rather than a generator; its
		// weights are low enough that it only reports alongside real CMS
		// matches via DetectAll, or alone when nothing stronger is present.
		Name: "bootstrap",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalScript, Pattern: "bootstrap.min", Weight: 25},
			{Kind: scrapesuite.SignalClass, Pattern: "card-body", Weight: 20},
			{Kind: scrapesuite.SignalClass, Pattern: "list-group-item", Weight: 15},
		},
		ItemHints: []string{".card", "li.list-group-item", ".media"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:       {".card-title", "h5.card-title"},
			scrapesuite.FieldURL:         {"a.stretched-link@href", ".card-title a@href", "a.card-link@href"},
			scrapesuite.FieldDescription: {".card-text"},
			scrapesuite.FieldImage:       {"img.card-img-top@src"},
		},
	},
	{
		Name: "hackernews",
		Signals: []scrapesuite.Signal{
			{Kind: scrapesuite.SignalClass, Pattern: "athing", Weight: 30},
			{Kind: scrapesuite.SignalClass, Pattern: "titleline", Weight: 25},
			{Kind: scrapesuite.SignalClass, Pattern: "hnuser", Weight: 20},
		},
		ItemHints: []string{"tr.athing", ".athing"},
		FieldHints: map[scrapesuite.Field][]string{
			scrapesuite.FieldTitle:  {".titleline a", "a.storylink"},
			scrapesuite.FieldURL:    {".titleline a@href", "a.storylink@href"},
			scrapesuite.FieldScore:  {".score"},
			scrapesuite.FieldAuthor: {".hnuser"},
			scrapesuite.FieldDate:   {".age@title", ".age a"},
		},
	},
}

// Profiles returns the framework fingerprint registry in declaration order.
// The returned slice is shared and must not be mutated.
func Profiles() []scrapesuite.Profile {
	return profiles
}

// ProfileByName returns the named profile.
// Returns ENOTFOUND if no profile with that name is registered.
func ProfileByName(name string) (scrapesuite.Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return scrapesuite.Profile{}, scrapesuite.Errorf(scrapesuite.ENOTFOUND, "framework profile %q not found", name)
}
