// ABOUTME: Closed registry of section kinds mapping each key to its store key and factories.
// ABOUTME: Adding a section is one table entry; unknown keys never reach the store.
package content

// Key names one editable section.
type Key string

// The known section keys. Persisted store keys are "content:" + Key.
const (
	KeyHero         Key = "hero"
	KeyFeatures     Key = "features"
	KeyProcess      Key = "process"
	KeyPricing      Key = "pricing"
	KeyServiceAreas Key = "serviceAreas"
	KeyAbout        Key = "about"
	KeyContact      Key = "contact"
	KeyFooter       Key = "footer"
	KeyNavigation   Key = "navigation"
	KeySiteSettings Key = "siteSettings"
	KeyResources    Key = "resources"
	KeyServices     Key = "services"
)

// storeKeyPrefix namespaces section documents in the KV store.
const storeKeyPrefix = "content:"

// section describes one registered section kind. defaults must return a
// fresh document per call; empty must return a pointer to a zero document
// used for shape-checking incoming writes.
type section struct {
	defaults func() any
	empty    func() any
}

var registry = map[Key]section{
	KeyHero:         {defaults: func() any { return DefaultHero() }, empty: func() any { return new(Hero) }},
	KeyFeatures:     {defaults: func() any { return DefaultFeatures() }, empty: func() any { return new(Features) }},
	KeyProcess:      {defaults: func() any { return DefaultProcess() }, empty: func() any { return new(Process) }},
	KeyPricing:      {defaults: func() any { return DefaultPricing() }, empty: func() any { return new(Pricing) }},
	KeyServiceAreas: {defaults: func() any { return DefaultServiceAreas() }, empty: func() any { return new(ServiceAreas) }},
	KeyAbout:        {defaults: func() any { return DefaultAbout() }, empty: func() any { return new(About) }},
	KeyContact:      {defaults: func() any { return DefaultContact() }, empty: func() any { return new(Contact) }},
	KeyFooter:       {defaults: func() any { return DefaultFooter() }, empty: func() any { return new(Footer) }},
	KeyNavigation:   {defaults: func() any { return DefaultNavigation() }, empty: func() any { return new(Navigation) }},
	KeySiteSettings: {defaults: func() any { return DefaultSiteSettings() }, empty: func() any { return new(SiteSettings) }},
	KeyResources:    {defaults: func() any { return DefaultResources() }, empty: func() any { return new(Resources) }},
	KeyServices:     {defaults: func() any { return DefaultServices() }, empty: func() any { return new(Services) }},
}

// keyOrder fixes the iteration order for Keys and the seeder's backup file.
var keyOrder = []Key{
	KeyHero, KeyFeatures, KeyProcess, KeyPricing, KeyServiceAreas,
	KeyAbout, KeyContact, KeyFooter, KeyNavigation, KeySiteSettings,
	KeyResources, KeyServices,
}

// HomeKeys are the sections aggregated for the home page and the
// all-sections API response.
var HomeKeys = []Key{
	KeyHero, KeyFeatures, KeyProcess, KeyPricing, KeyServiceAreas,
	KeyAbout, KeyContact, KeyFooter, KeySiteSettings,
}

// Known reports whether name is a registered section key.
func Known(name string) bool {
	_, ok := registry[Key(name)]
	return ok
}

// Keys returns all registered section keys in stable order.
func Keys() []Key {
	out := make([]Key, len(keyOrder))
	copy(out, keyOrder)
	return out
}

// StoreKey returns the KV key a section document is persisted under.
func StoreKey(k Key) string {
	return storeKeyPrefix + string(k)
}

// Default returns a fresh copy of the section's fallback document, or nil
// for an unknown key.
func Default(k Key) any {
	ent, ok := registry[k]
	if !ok {
		return nil
	}
	return ent.defaults()
}
