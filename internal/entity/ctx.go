package entity

import (
	"context"
	"errors"
)

type (
	CtxKeyIP    struct{}
	CtxKeyToken struct{}
	CtxKeyActor struct{}
)

func SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken{}, token)
}

func TokenFromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(CtxKeyToken{}).(string)
	if !ok {
		return "", errors.New("data type casting")
	}

	return token, nil
}

func SetActorToContext(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, CtxKeyActor{}, actor)
}

// ActorFromContext returns "anonymous" when no caller was identified.
func ActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(CtxKeyActor{}).(string)
	if !ok || actor == "" {
		return "anonymous"
	}

	return actor
}
