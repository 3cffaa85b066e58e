package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	ShopIDKey contextKey = "laundry_shop_id"
	RoleKey   contextKey = "user_role"
	TokenKey  contextKey = "token"
)

// User IDs are opaque identity-provider strings, not UUIDs.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}

func GetShopIDFromContext(ctx context.Context) (string, bool) {
	shopIDVal := ctx.Value(ShopIDKey)
	if shopIDVal == nil {
		return "", false
	}

	shopID, ok := shopIDVal.(string)
	if !ok || shopID == "" {
		return "", false
	}

	return shopID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetSessionContext(ctx context.Context, userID, shopID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, ShopIDKey, shopID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
