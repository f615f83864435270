package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxBodyBytes = 1 << 20

type actorKey struct{}

// WithActor stores the acting user's id on ctx.
func WithActor(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorFromContext returns the acting user's id stored by WithActor.
func ActorFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(actorKey{}).(primitive.ObjectID)
	return id, ok && !id.IsZero()
}

var errMissingActor = errors.New("missing acting user")

func actor(r *http.Request) (primitive.ObjectID, error) {
	id, ok := ActorFromContext(r.Context())
	if !ok {
		return primitive.NilObjectID, errMissingActor
	}
	return id, nil
}

func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	raw := r.PathValue(name)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func boolQuery(r *http.Request, key string) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
