package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/pkg/logger"
)

var (
	ErrUnknownProduct = errors.New("product is not in the catalog")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)

// CatalogFetcher abstracts the API client for catalog reads.
type CatalogFetcher interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

// OrderSubmitter abstracts the API client for order creation.
type OrderSubmitter interface {
	CreateOrder(ctx context.Context, sub order.Submission) (*order.Confirmation, error)
}

// Service owns the catalog and the single order draft for the session.
// All mutations go through its mutex: unlike a browser event loop there
// is no implicit serialization here.
type Service struct {
	fetcher   CatalogFetcher
	submitter OrderSubmitter
	log       logger.Logger

	mu         sync.Mutex
	catalog    []catalog.Product
	draft      *order.Draft
	submitting bool
}

func NewService(fetcher CatalogFetcher, submitter OrderSubmitter, log logger.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		submitter: submitter,
		log:       log,
		draft:     order.NewDraft(),
	}
}

// LoadCatalog refreshes the in-memory catalog. On failure the previous
// catalog is kept and the error is reported to the caller.
func (s *Service) LoadCatalog(ctx context.Context) ([]catalog.Product, error) {
	products, err := s.fetcher.ListProducts(ctx)
	if err != nil {
		s.log.Error("failed to fetch products", logger.Error(err))
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	s.mu.Lock()
	s.catalog = products
	s.mu.Unlock()

	return products, nil
}

// Catalog returns a copy of the last successfully fetched catalog.
func (s *Service) Catalog() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]catalog.Product, len(s.catalog))
	copy(products, s.catalog)
	return products
}

// Lookup finds a product in the loaded catalog.
func (s *Service) Lookup(productID int64) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(productID)
}

func (s *Service) lookupLocked(productID int64) (catalog.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// AddProduct snapshots the catalog product into the draft. The quantity
// read at call time is what goes in, there is no live binding.
func (s *Service) AddProduct(productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lookupLocked(productID)
	if !ok {
		return ErrUnknownProduct
	}
	return s.draft.Add(p, qty)
}

func (s *Service) RemoveProduct(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Remove(productID)
}

func (s *Service) SetCustomerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetName(name)
}

func (s *Service) SetCustomerCPF(cpf string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetCPF(cpf)
}

func (s *Service) SetCustomerEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.SetEmail(email)
}

// Summary snapshots the current draft for rendering.
func (s *Service) Summary() order.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Summary()
}

// Submit builds the payload from the draft (recomputing the total
// independently of any rendered value) and posts it. The draft is reset
// only on success; any failure leaves it intact so the user can retry.
// A second Submit while one is in flight gets ErrSubmitInFlight.
func (s *Service) Submit(ctx context.Context) (*order.Confirmation, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	sub, err := order.BuildSubmission(s.draft, time.Now())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	conf, err := s.submitter.CreateOrder(ctx, sub)
	if err != nil {
		s.log.Error("failed to create order", logger.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.mu.Lock()
	s.draft.Reset()
	s.mu.Unlock()

	s.log.Info("order submitted", logger.Int64("order_id", conf.OrderID))
	return conf, nil
}
