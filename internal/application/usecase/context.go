package usecase

import "context"

type ctxKey string

const ownerKey ctxKey = "owner_id"

// WithOwner guarda el ID del usuario autenticado en el contexto. Lo ponen los
// handlers a partir del JWT; los usecases lo usan como propietario de los
// registros que crean.
func WithOwner(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ownerKey, userID)
}

// OwnerFromContext devuelve el ID del usuario autenticado, o cadena vacía.
func OwnerFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ownerKey).(string)
	return v
}
