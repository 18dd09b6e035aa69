// Package localstore implements the local persistent dataset that substitutes
// for the remote backend when it is unreachable. The layout mirrors the
// browser localStorage keys of the original client: one JSON document per key,
// persisted in a gocloud blob bucket (file:// on disk, mem:// in tests).
package localstore

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"sync"

	"foodies/internal/domain/entity"
	"foodies/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	keyAuthToken = "authToken"
	keyUser      = "user"
	keyUsers     = "users"

	cartKeyPrefix   = "cart_"
	ordersKeyPrefix = "orders_"
)

// StoredUser is the persisted user record. PasswordHash is set by the bundled
// backend; the local substitute never verifies it.
type StoredUser struct {
	entity.User
	PasswordHash string `json:"password,omitempty"`
}

// Store is the key/value dataset. All writes are serialized through a single
// mutex; within one process, operations against the same entity are therefore
// observed in call order. Concurrent writers from other processes are
// unguarded, last write wins.
type Store struct {
	mu     sync.Mutex
	bucket *blob.Bucket
}

// New opens the bucket behind urlstr and returns the store.
func New(ctx context.Context, urlstr string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, urlstr)
	if err != nil {
		return nil, errors.Wrapf(err, "open store bucket %s", urlstr)
	}

	return &Store{bucket: bucket}, nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// get unmarshals the document at key into v, reporting whether it existed.
func (s *Store) get(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "read %s", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}

	return true, nil
}

func (s *Store) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return errors.Wrapf(s.bucket.WriteAll(ctx, key, data, nil), "write %s", key)
}

func (s *Store) delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}

func (s *Store) listKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", prefix)
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

// --- Session ---

// Token returns the persisted auth token, if any.
func (s *Store) Token(ctx context.Context) (string, bool) {
	var token string
	ok, err := s.get(ctx, keyAuthToken, &token)
	if err != nil || !ok || token == "" {
		return "", false
	}

	return token, true
}

// CurrentUser returns the persisted session user, if any.
func (s *Store) CurrentUser(ctx context.Context) (*entity.User, bool) {
	var user entity.User
	ok, err := s.get(ctx, keyUser, &user)
	if err != nil || !ok || user.ID == "" {
		return nil, false
	}

	return &user, true
}

// SaveSession persists the token and user after a successful login.
func (s *Store) SaveSession(ctx context.Context, token string, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.set(ctx, keyAuthToken, token); err != nil {
		return err
	}

	return s.set(ctx, keyUser, user)
}

// ClearSession removes the persisted token and user.
func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.delete(ctx, keyAuthToken); err != nil {
		return err
	}

	return s.delete(ctx, keyUser)
}

// --- Users ---

// Users returns all known users: the fixed seed pair plus every record
// registered since.
func (s *Store) Users(ctx context.Context) ([]StoredUser, error) {
	var registered []StoredUser
	if _, err := s.get(ctx, keyUsers, &registered); err != nil {
		return nil, err
	}

	return append(seedUsers(), registered...), nil
}

// FindUserByEmail looks a user up across seed and registered records.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*StoredUser, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}

	return nil, nil
}

// AppendUser adds a newly registered user to the persisted list.
func (s *Store) AppendUser(ctx context.Context, user StoredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var registered []StoredUser
	if _, err := s.get(ctx, keyUsers, &registered); err != nil {
		return err
	}
	registered = append(registered, user)

	return s.set(ctx, keyUsers, registered)
}

// --- Cart ---

// Cart returns the user's persisted cart, creating an empty one on first access.
func (s *Store) Cart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart := entity.NewCart(userID)
	if _, err := s.get(ctx, cartKeyPrefix+userID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// SaveCart persists the cart under its owner's key.
func (s *Store) SaveCart(ctx context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(ctx, cartKeyPrefix+cart.UserID, cart)
}

// --- Orders ---

// Orders returns the user's persisted orders, most recent first.
func (s *Store) Orders(ctx context.Context, userID string) ([]entity.Order, error) {
	var orders []entity.Order
	if _, err := s.get(ctx, ordersKeyPrefix+userID, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// SaveOrders replaces the user's order list.
func (s *Store) SaveOrders(ctx context.Context, userID string, orders []entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(ctx, ordersKeyPrefix+userID, orders)
}

// PrependOrder inserts a new order at the head of its owner's list.
func (s *Store) PrependOrder(ctx context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []entity.Order
	if _, err := s.get(ctx, ordersKeyPrefix+order.UserID, &orders); err != nil {
		return err
	}
	orders = append([]entity.Order{*order}, orders...)

	return s.set(ctx, ordersKeyPrefix+order.UserID, orders)
}

// AllOrders aggregates every user's orders sorted by creation time descending.
func (s *Store) AllOrders(ctx context.Context) ([]entity.Order, error) {
	keys, err := s.listKeys(ctx, ordersKeyPrefix)
	if err != nil {
		return nil, err
	}

	var all []entity.Order
	for _, key := range keys {
		var orders []entity.Order
		if _, err := s.get(ctx, key, &orders); err != nil {
			return nil, err
		}
		all = append(all, orders...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

// FindOrder locates an order by id across every user's list.
func (s *Store) FindOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	all, err := s.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == orderID {
			return &all[i], nil
		}
	}

	return nil, nil
}
