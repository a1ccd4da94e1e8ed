package utils

import (
	"context"

	"mixie/globals"
)

func UserEmailFromContext(ctx context.Context) string {
	email, ok := ctx.Value(globals.UserEmailKey).(string)
	if !ok || email == "" {
		return ""
	}
	return email
}
