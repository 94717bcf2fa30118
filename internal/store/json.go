package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// getJSON reads key from kv and decodes it into a T. A missing key yields
// [ErrKeyNotFound]; an undecodable value yields [ErrCorruptedValue].
func getJSON[T any](ctx context.Context, kv KeyValueStore, key string) (T, error) {
	var out T

	raw, err := kv.Get(ctx, key)
	if err != nil {
		return out, err
	}

	if err = json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("%w: key %q: %w", ErrCorruptedValue, key, err)
	}

	return out, nil
}

// setJSON encodes v and stores it under key.
func setJSON(ctx context.Context, kv KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding value for key %q: %w", key, err)
	}

	return kv.Set(ctx, key, string(data))
}
