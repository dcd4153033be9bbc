package repository

import (
	"context"

	"offer_agent/internal/domain/entities"
	"offer_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPropertiesTableName = "properties"
	propertiesSourceURLIndex   = "source_url-index"
	propertiesAddressKeyIndex  = "address_key-index"
)

type propertyItem struct {
	ID                string         `dynamodbav:"id"`
	SourceURL         string         `dynamodbav:"source_url,omitempty"`
	SourceType        string         `dynamodbav:"source_type,omitempty"`
	MLSNumber         string         `dynamodbav:"mls_number,omitempty"`
	Address           string         `dynamodbav:"address"`
	City              string         `dynamodbav:"city"`
	State             string         `dynamodbav:"state"`
	ZipCode           string         `dynamodbav:"zip_code"`
	AddressKey        string         `dynamodbav:"address_key"`
	Price             *float64       `dynamodbav:"price,omitempty"`
	AIFairValue       *float64       `dynamodbav:"ai_fair_value,omitempty"`
	DaysOnMarket      *int           `dynamodbav:"days_on_market,omitempty"`
	PropertyType      string         `dynamodbav:"property_type"`
	ListingAgentName  string         `dynamodbav:"listing_agent_name,omitempty"`
	ListingAgentEmail string         `dynamodbav:"listing_agent_email,omitempty"`
	ListingAgentPhone string         `dynamodbav:"listing_agent_phone,omitempty"`
	OfferDeadline     string         `dynamodbav:"offer_deadline,omitempty"`
	HasHOA            *bool          `dynamodbav:"has_hoa,omitempty"`
	BuiltBefore1978   *bool          `dynamodbav:"built_before_1978,omitempty"`
	ExtractedData     map[string]any `dynamodbav:"extracted_data,omitempty"`
	CreatedAt         string         `dynamodbav:"created_at"`
	UpdatedAt         string         `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists Property entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: source_url-index (PK: source_url)
//   - GSI: address_key-index (PK: address_key)
//
// source_url is omitted for manually entered properties so they never land
// in the URL index.

type PropertyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPropertyItem(p)); err != nil {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	found, err := putExisting(ctx, r.ddb, r.tableName, toPropertyItem(p))
	if err != nil || !found {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	var it propertyItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func (r *PropertyDynamoRepository) GetBySourceURL(ctx context.Context, sourceURL string) (entities.Property, error) {
	items, err := queryIndex[propertyItem](ctx, r.ddb, r.tableName, propertiesSourceURLIndex, "source_url", sourceURL)
	if err != nil || len(items) == 0 {
		return entities.Property{}, err
	}
	return fromPropertyItem(items[0]), nil
}

func (r *PropertyDynamoRepository) ListByAddress(ctx context.Context, address, city, state, zipCode string) ([]entities.Property, error) {
	key := entities.AddressKey(address, city, state, zipCode)
	items, err := queryIndex[propertyItem](ctx, r.ddb, r.tableName, propertiesAddressKeyIndex, "address_key", key)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Property, 0, len(items))
	for _, it := range items {
		out = append(out, fromPropertyItem(it))
	}
	return out, nil
}

func toPropertyItem(p entities.Property) propertyItem {
	return propertyItem{
		ID:                p.ID,
		SourceURL:         p.SourceURL,
		SourceType:        p.SourceType,
		MLSNumber:         p.MLSNumber,
		Address:           p.Address,
		City:              p.City,
		State:             p.State,
		ZipCode:           p.ZipCode,
		AddressKey:        p.AddressKey(),
		Price:             p.Price,
		AIFairValue:       p.AIFairValue,
		DaysOnMarket:      p.DaysOnMarket,
		PropertyType:      p.PropertyType,
		ListingAgentName:  p.ListingAgentName,
		ListingAgentEmail: p.ListingAgentEmail,
		ListingAgentPhone: p.ListingAgentPhone,
		OfferDeadline:     formatTimePtr(p.OfferDeadline),
		HasHOA:            p.HasHOA,
		BuiltBefore1978:   p.BuiltBefore1978,
		ExtractedData:     p.ExtractedData,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	return entities.Property{
		ID:                it.ID,
		SourceURL:         it.SourceURL,
		SourceType:        it.SourceType,
		MLSNumber:         it.MLSNumber,
		Address:           it.Address,
		City:              it.City,
		State:             it.State,
		ZipCode:           it.ZipCode,
		Price:             it.Price,
		AIFairValue:       it.AIFairValue,
		DaysOnMarket:      it.DaysOnMarket,
		PropertyType:      it.PropertyType,
		ListingAgentName:  it.ListingAgentName,
		ListingAgentEmail: it.ListingAgentEmail,
		ListingAgentPhone: it.ListingAgentPhone,
		OfferDeadline:     parseTimePtr(it.OfferDeadline),
		HasHOA:            it.HasHOA,
		BuiltBefore1978:   it.BuiltBefore1978,
		ExtractedData:     it.ExtractedData,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
