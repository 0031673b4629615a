package winnow

type options struct {
	taxonomy   string
	categories []Category
	rules      []Rule
	topN       int
	limit      int
	workers    int
}

// Option configures a Winnow instance.
type Option func(*options)

// WithTaxonomy selects a built-in taxonomy: "general" (community posts)
// or "brandpage" (brand-page posts). Default: "general".
// Ignored when WithCategories is also given.
func WithTaxonomy(name string) Option {
	return func(o *options) {
		o.taxonomy = name
	}
}

// WithCategories supplies a custom taxonomy instead of a built-in one.
func WithCategories(cats []Category) Option {
	return func(o *options) {
		o.categories = cats
	}
}

// WithRules adds deterministic override rules applied after dictionary
// matching, in order.
func WithRules(rs []Rule) Option {
	return func(o *options) {
		o.rules = rs
	}
}

// WithTopN caps each summary ranking at n entries. Default: 10.
func WithTopN(n int) Option {
	return func(o *options) {
		o.topN = n
	}
}

// WithLimit caps how many items a batch run classifies. Zero means no cap.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithWorkers sets batch concurrency. Default: 1 (sequential).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func defaultOptions() options {
	return options{
		taxonomy: "general",
		topN:     10,
		workers:  1,
	}
}
