package repository

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tableSpec struct {
	envKey  string
	def     string
	indexes []string
}

var tableSpecs = []tableSpec{
	{envKey: "USERS_TABLE", def: defaultUsersTableName, indexes: []string{"email"}},
	{envKey: "PROPERTIES_TABLE", def: defaultPropertiesTableName, indexes: []string{"source_url", "address_key"}},
	{envKey: "OFFERS_TABLE", def: defaultOffersTableName, indexes: []string{"user_id"}},
	{envKey: "PAYMENTS_TABLE", def: defaultPaymentsTableName, indexes: []string{"provider_session_id", "offer_id"}},
	{envKey: "SUBSCRIPTIONS_TABLE", def: defaultSubscriptionsTableName, indexes: []string{"provider_subscription_id", "user_id"}},
}

// TableDefinitions describes every table the repositories expect, with one
// "<attr>-index" GSI per secondary lookup.
func TableDefinitions() []dynamodb.CreateTableInput {
	defs := make([]dynamodb.CreateTableInput, 0, len(tableSpecs))
	for _, spec := range tableSpecs {
		attrs := []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		}
		var gsis []types.GlobalSecondaryIndex
		for _, attr := range spec.indexes {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
			gsis = append(gsis, types.GlobalSecondaryIndex{
				IndexName: aws.String(attr + "-index"),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			})
		}
		defs = append(defs, dynamodb.CreateTableInput{
			TableName:              aws.String(getenvDefault(spec.envKey, spec.def)),
			AttributeDefinitions:   attrs,
			KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
			GlobalSecondaryIndexes: gsis,
			BillingMode:            types.BillingModePayPerRequest,
		})
	}
	return defs
}

// EnsureTables creates the missing tables. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, def := range TableDefinitions() {
		in := def
		_, err := ddb.CreateTable(ctx, &in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[storage][dynamodb] table exists table=%s", aws.ToString(def.TableName))
				continue
			}
			return err
		}
		log.Printf("[storage][dynamodb] table created table=%s", aws.ToString(def.TableName))
	}
	return nil
}

// DropTables deletes every table. Missing tables are skipped.
func DropTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, def := range TableDefinitions() {
		_, err := ddb.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: def.TableName})
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if errors.As(err, &notFound) {
				continue
			}
			return err
		}
		log.Printf("[storage][dynamodb] table dropped table=%s", aws.ToString(def.TableName))
	}
	return nil
}
