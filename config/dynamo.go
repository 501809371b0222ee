package config

import "os"

type DynamoConfig struct {
	UsersTableName string
}

// GetDynamoConfig returns nil when DYNAMO_USERS_TABLE is unset, in which case
// the process runs on the in-memory user store.
func GetDynamoConfig() *DynamoConfig {
	tableName := os.Getenv("DYNAMO_USERS_TABLE")
	if tableName == "" {
		return nil
	}

	return &DynamoConfig{
		UsersTableName: tableName,
	}
}
