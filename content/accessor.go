// ABOUTME: Read-through-with-default / write-through accessor between sections and the KV store.
// ABOUTME: Reads never fail (defaults substitute); writes shape-check then replace wholesale.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/familybond-au/familybond/store"
)

// ErrUnknownSection is returned for a key outside the registry.
var ErrUnknownSection = errors.New("unknown content section")

// ErrInvalidDocument is returned when a replacement document does not match
// the section's schema.
var ErrInvalidDocument = errors.New("document does not match section schema")

// Accessor is the single choke point for reading and writing section
// documents. The KV backend is injected so tests can substitute a fake.
type Accessor struct {
	kv store.KV
}

// NewAccessor creates an accessor over the given store.
func NewAccessor(kv store.KV) *Accessor {
	return &Accessor{kv: kv}
}

// Get returns the section document for key, falling back to the section
// default on store miss, store error, or decode error. The stored payload is
// decoded over a fresh default so documents persisted before a schema change
// pick up newly added fields from the default rather than zero values.
// Get never returns an error; unknown keys yield nil.
func (a *Accessor) Get(ctx context.Context, key Key) any {
	ent, ok := registry[key]
	if !ok {
		return nil
	}

	doc := ent.defaults()
	raw, err := a.kv.Get(ctx, StoreKey(key))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("component=content action=get section=%s err=%v", key, err)
		}
		return doc
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		log.Printf("component=content action=get section=%s err=decode: %v", key, err)
		// The decode may have partially overwritten doc; hand back a clean default.
		return ent.defaults()
	}
	return doc
}

// Set shape-checks the replacement document against the section's schema and
// writes it wholesale to the store. There is no partial-field patch and no
// retry; a store failure surfaces as an error for the caller to report.
func (a *Accessor) Set(ctx context.Context, key Key, doc json.RawMessage) error {
	ent, ok := registry[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}

	// json.Unmarshal treats null as a no-op, which would persist an all-zero
	// document. Reject it before the shape check.
	if trimmed := bytes.TrimSpace(doc); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: document is null", ErrInvalidDocument)
	}

	typed := ent.empty()
	if err := json.Unmarshal(doc, typed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	payload, err := json.Marshal(typed)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := a.kv.Set(ctx, StoreKey(key), payload); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// GetAll fetches the nine home-page sections concurrently and merges them.
// Each Get already defaults safely, so GetAll cannot fail as a whole; a
// concurrent write may be reflected in some sections and not others.
func (a *Accessor) GetAll(ctx context.Context) *Home {
	var home Home
	targets := map[Key]func(any){
		KeyHero:         func(d any) { home.Hero = d.(*Hero) },
		KeyFeatures:     func(d any) { home.Features = d.(*Features) },
		KeyProcess:      func(d any) { home.Process = d.(*Process) },
		KeyPricing:      func(d any) { home.Pricing = d.(*Pricing) },
		KeyServiceAreas: func(d any) { home.ServiceAreas = d.(*ServiceAreas) },
		KeyAbout:        func(d any) { home.About = d.(*About) },
		KeyContact:      func(d any) { home.Contact = d.(*Contact) },
		KeyFooter:       func(d any) { home.Footer = d.(*Footer) },
		KeySiteSettings: func(d any) { home.SiteSettings = d.(*SiteSettings) },
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for key, assign := range targets {
		wg.Add(1)
		go func(key Key, assign func(any)) {
			defer wg.Done()
			doc := a.Get(ctx, key)
			mu.Lock()
			assign(doc)
			mu.Unlock()
		}(key, assign)
	}
	wg.Wait()
	return &home
}

// Typed single-section readers. The registry guarantees the assertions hold.

// Hero returns the hero document.
func (a *Accessor) Hero(ctx context.Context) *Hero { return a.Get(ctx, KeyHero).(*Hero) }

// Footer returns the footer document.
func (a *Accessor) Footer(ctx context.Context) *Footer { return a.Get(ctx, KeyFooter).(*Footer) }

// SiteSettings returns the site settings document.
func (a *Accessor) SiteSettings(ctx context.Context) *SiteSettings {
	return a.Get(ctx, KeySiteSettings).(*SiteSettings)
}

// Resources returns the resources document.
func (a *Accessor) Resources(ctx context.Context) *Resources {
	return a.Get(ctx, KeyResources).(*Resources)
}

// Services returns the services page document.
func (a *Accessor) Services(ctx context.Context) *Services {
	return a.Get(ctx, KeyServices).(*Services)
}
