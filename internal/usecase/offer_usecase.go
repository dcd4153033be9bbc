package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound        = errors.New("offer not found")
	ErrInvalidOfferID       = errors.New("invalid offer id")
	ErrInvalidOfferInput    = errors.New("invalid offer input")
	ErrPaymentRequired      = errors.New("payment required to download")
	ErrOfferLetterNotReady  = errors.New("offer letter not yet available")
	ErrOfferDocumentMissing = errors.New("PDF file not found")
)

// CreateOfferInput carries what the buyer filled in on the offer form.
// The property is either referenced by PropertyID or described by its
// postal address.
type CreateOfferInput struct {
	PropertyID          string
	Address             string
	City                string
	State               string
	ZipCode             string
	PropertyType        string
	FinancingType       string
	OfferPrice          float64
	Contingencies       map[string]any
	TimelinePreferences map[string]any
	Concessions         map[string]any
	AdditionalNotes     string
	BuyerName           string
	BuyerEmail          string
	BuyerPhone          string
}

type OfferDetails struct {
	Offer    entities.Offer
	Property entities.Property
}

type DownloadKind int

const (
	DownloadDocument DownloadKind = iota
	DownloadRedirect
	DownloadText
)

// OfferDownload is what the download endpoint sends back: the stored
// document, a redirect to an external URL, or the text preview.
type OfferDownload struct {
	Kind        DownloadKind
	FileName    string
	ContentType string
	Data        []byte
	RedirectURL string
}

type IOfferUseCase interface {
	Create(ctx context.Context, in CreateOfferInput) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (OfferDetails, error)
	Download(ctx context.Context, id string) (OfferDownload, error)
}

// OfferUseCaseDeps groups the collaborators of OfferUseCase. Generator,
// Store and Notifier may be nil; the matching side effect is then skipped.
type OfferUseCaseDeps struct {
	Users             interfaces.IUserRepository
	Properties        interfaces.IPropertyRepository
	Offers            interfaces.IOfferRepository
	Payments          interfaces.IPaymentRepository
	Subscriptions     interfaces.ISubscriptionRepository
	Generator         interfaces.IOfferDocumentGenerator
	Store             interfaces.IDocumentStore
	Notifier          interfaces.INotifier
	NotificationEmail string
	DefaultBuyerEmail string
	ResolveDocument   func(url string) (name string, ok bool)
}

type OfferUseCase struct {
	d   OfferUseCaseDeps
	now func() time.Time
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(d OfferUseCaseDeps) *OfferUseCase {
	if d.DefaultBuyerEmail == "" {
		d.DefaultBuyerEmail = "temp@example.com"
	}
	return &OfferUseCase{d: d, now: func() time.Time { return time.Now().UTC() }}
}

func (u *OfferUseCase) Create(ctx context.Context, in CreateOfferInput) (entities.Offer, error) {
	if err := validateOfferInput(&in); err != nil {
		return entities.Offer{}, err
	}
	log.Printf("[offer][usecase] create start property_id=%q address=%q price=%.2f", in.PropertyID, in.Address, in.OfferPrice)

	buyer, err := u.findOrCreateBuyer(ctx, in)
	if err != nil {
		return entities.Offer{}, err
	}
	property, err := u.resolveProperty(ctx, in)
	if err != nil {
		return entities.Offer{}, err
	}

	now := u.now()
	offer := entities.Offer{
		ID:                  uuid.NewString(),
		UserID:              buyer.ID,
		PropertyID:          property.ID,
		FinancingType:       in.FinancingType,
		OfferPrice:          in.OfferPrice,
		Contingencies:       in.Contingencies,
		TimelinePreferences: in.TimelinePreferences,
		Concessions:         in.Concessions,
		AdditionalNotes:     in.AdditionalNotes,
		Status:              entities.OfferStatusPendingReview,
		AgentReviewStatus:   entities.AgentReviewStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	offer, err = u.d.Offers.Create(ctx, offer)
	if err != nil {
		return entities.Offer{}, err
	}
	log.Printf("[offer][usecase] offer stored offer_id=%s user_id=%s property_id=%s", offer.ID, buyer.ID, property.ID)

	offer = u.generateLetter(ctx, offer, property, buyer)
	offer = u.notify(ctx, offer, property, buyer)
	return offer, nil
}

func validateOfferInput(in *CreateOfferInput) error {
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	in.FinancingType = strings.TrimSpace(in.FinancingType)
	in.BuyerEmail = strings.TrimSpace(in.BuyerEmail)

	if in.PropertyID == "" && (in.Address == "" || in.City == "" || in.State == "" || in.ZipCode == "") {
		return fmt.Errorf("%w: property_id or address, city, state and zip code are required", ErrInvalidOfferInput)
	}
	if in.FinancingType == "" {
		return fmt.Errorf("%w: financing type is required", ErrInvalidOfferInput)
	}
	if in.OfferPrice <= 0 {
		return fmt.Errorf("%w: offer price must be positive", ErrInvalidOfferInput)
	}
	if strings.TrimSpace(in.PropertyType) == "" {
		in.PropertyType = entities.DefaultPropertyType
	}
	if in.Contingencies == nil {
		in.Contingencies = map[string]any{}
	}
	return nil
}

func (u *OfferUseCase) findOrCreateBuyer(ctx context.Context, in CreateOfferInput) (entities.User, error) {
	email := in.BuyerEmail
	if email == "" {
		email = u.d.DefaultBuyerEmail
	}
	user, err := u.d.Users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID != "" {
		return user, nil
	}
	now := u.now()
	return u.d.Users.Create(ctx, entities.User{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(email),
		Name:      strings.TrimSpace(in.BuyerName),
		Phone:     strings.TrimSpace(in.BuyerPhone),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *OfferUseCase) resolveProperty(ctx context.Context, in CreateOfferInput) (entities.Property, error) {
	if in.PropertyID != "" {
		p, err := u.d.Properties.GetByID(ctx, in.PropertyID)
		if err != nil {
			return entities.Property{}, err
		}
		if p.ID == "" {
			return entities.Property{}, ErrPropertyNotFound
		}
		return p, nil
	}

	candidates, err := u.d.Properties.ListByAddress(ctx, in.Address, in.City, in.State, in.ZipCode)
	if err != nil {
		return entities.Property{}, err
	}
	for _, p := range candidates {
		if strings.EqualFold(p.PropertyType, in.PropertyType) {
			return p, nil
		}
	}

	now := u.now()
	return u.d.Properties.Create(ctx, entities.Property{
		ID:           uuid.NewString(),
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		PropertyType: in.PropertyType,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// generateLetter renders and stores the contract. Failures are logged and
// leave the offer in PENDING_REVIEW.
func (u *OfferUseCase) generateLetter(ctx context.Context, offer entities.Offer, property entities.Property, buyer entities.User) entities.Offer {
	if u.d.Generator == nil || u.d.Store == nil {
		return offer
	}
	pdf, err := u.d.Generator.Generate(ctx, offer, property, buyer)
	if err != nil {
		log.Printf("[offer][usecase] error generating PDF offer letter offer_id=%s err=%v", offer.ID, err)
		return offer
	}
	// The random suffix keeps stored letters unguessable from the offer id.
	url, err := u.d.Store.Save(ctx, fmt.Sprintf("offer-%s-%s.pdf", offer.ID, uuid.NewString()), pdf)
	if err != nil {
		log.Printf("[offer][usecase] error storing PDF offer letter offer_id=%s err=%v", offer.ID, err)
		return offer
	}

	updated := offer
	updated.OfferLetterURL = url
	if updated.Status.CanTransitionTo(entities.OfferStatusGenerated) {
		updated.Status = entities.OfferStatusGenerated
	}
	updated.UpdatedAt = u.now()
	saved, err := u.d.Offers.Update(ctx, updated)
	if err != nil {
		log.Printf("[offer][usecase] error saving offer letter url offer_id=%s err=%v", offer.ID, err)
		return offer
	}
	log.Printf("[offer][usecase] offer letter generated offer_id=%s url=%s", offer.ID, url)
	return saved
}

func (u *OfferUseCase) notify(ctx context.Context, offer entities.Offer, property entities.Property, buyer entities.User) entities.Offer {
	if u.d.Notifier == nil || u.d.NotificationEmail == "" {
		log.Printf("[offer][usecase] NOTIFICATION_EMAIL not set, skipping email offer_id=%s", offer.ID)
		return offer
	}
	body := fmt.Sprintf("New Offer Created\n\nOffer ID: %s\nProperty: %s\nOffer Price: $%.2f\nFinancing Type: %s\nBuyer Email: %s\n",
		offer.ID, property.FullAddress(), offer.OfferPrice, offer.FinancingType, buyer.Email)
	err := u.d.Notifier.Send(ctx, interfaces.Notification{
		To:      u.d.NotificationEmail,
		Subject: "New Offer Created - " + property.Address,
		Body:    body,
	})
	if err != nil {
		log.Printf("[offer][usecase] failed to send email notification offer_id=%s err=%v", offer.ID, err)
		return offer
	}

	sentAt := u.now()
	updated := offer
	updated.NotificationSent = true
	updated.NotificationSentAt = &sentAt
	updated.UpdatedAt = sentAt
	saved, err := u.d.Offers.Update(ctx, updated)
	if err != nil {
		log.Printf("[offer][usecase] failed to mark notification sent offer_id=%s err=%v", offer.ID, err)
		return offer
	}
	return saved
}

func (u *OfferUseCase) getOffer(ctx context.Context, id string) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	o, err := u.d.Offers.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *OfferUseCase) GetByID(ctx context.Context, id string) (OfferDetails, error) {
	o, err := u.getOffer(ctx, id)
	if err != nil {
		return OfferDetails{}, err
	}
	p, err := u.d.Properties.GetByID(ctx, o.PropertyID)
	if err != nil {
		return OfferDetails{}, err
	}
	return OfferDetails{Offer: o, Property: p}, nil
}

func (u *OfferUseCase) Download(ctx context.Context, id string) (OfferDownload, error) {
	o, err := u.getOffer(ctx, id)
	if err != nil {
		return OfferDownload{}, err
	}

	allowed, err := u.canDownload(ctx, o)
	if err != nil {
		return OfferDownload{}, err
	}
	if !allowed {
		log.Printf("[offer][usecase] download refused, payment required offer_id=%s", o.ID)
		return OfferDownload{}, ErrPaymentRequired
	}

	if o.OfferLetterURL == "" && o.OfferLetterPreview == "" {
		return OfferDownload{}, ErrOfferLetterNotReady
	}

	if o.OfferLetterURL != "" {
		name, local := "", false
		if u.d.ResolveDocument != nil {
			name, local = u.d.ResolveDocument(o.OfferLetterURL)
		}
		if !local {
			return OfferDownload{Kind: DownloadRedirect, RedirectURL: o.OfferLetterURL}, nil
		}
		if u.d.Store == nil {
			return OfferDownload{}, ErrOfferDocumentMissing
		}
		data, err := u.d.Store.Open(ctx, name)
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			return OfferDownload{}, ErrOfferDocumentMissing
		}
		if err != nil {
			return OfferDownload{}, err
		}
		return OfferDownload{
			Kind:        DownloadDocument,
			FileName:    "offer-letter-" + o.ID + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}

	return OfferDownload{
		Kind:        DownloadText,
		FileName:    "offer-letter-" + o.ID + ".txt",
		ContentType: "text/plain",
		Data:        []byte(o.OfferLetterPreview),
	}, nil
}

// canDownload reports whether a completed download payment exists for the
// offer or its owner holds an active subscription.
func (u *OfferUseCase) canDownload(ctx context.Context, o entities.Offer) (bool, error) {
	payments, err := u.d.Payments.ListByOfferID(ctx, o.ID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.UnlocksDownload() {
			return true, nil
		}
	}

	if u.d.Subscriptions == nil || o.UserID == "" {
		return false, nil
	}
	subs, err := u.d.Subscriptions.ListByUserID(ctx, o.UserID)
	if err != nil {
		return false, err
	}
	now := u.now()
	for _, s := range subs {
		if s.IsActiveAt(now) {
			return true, nil
		}
	}
	return false, nil
}
