package common

type contextKey string

const AccountIDContextKey contextKey = "account_id"
