package config

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/apollodao/cw-config/feeconfig"
)

// Unchecked is the raw form of a stored config type T: addresses are plain
// strings and nothing is guaranteed valid. Validate resolves and checks the
// raw values into a T.
type Unchecked[T any] interface {
	Validate(resolver feeconfig.AddressResolver) (T, error)
}

// AccessCheck reports whether sender may update the config. A nil AccessCheck
// on a Store means every sender is allowed.
type AccessCheck func(ctx context.Context, sender sdk.AccAddress) error

// AuthorityOnly returns an AccessCheck admitting exactly the given address.
func AuthorityOnly(authority sdk.AccAddress) AccessCheck {
	return func(_ context.Context, sender sdk.AccAddress) error {
		if !sender.Equals(authority) {
			return errors.Wrapf(ErrUnauthorized, "sender %s is not the authority", sender)
		}
		return nil
	}
}

// Store holds a single validated config value of type T with unchecked form U.
type Store[T any, U Unchecked[T]] struct {
	name        string
	item        collections.Item[T]
	toUnchecked func(T) U
	resolver    feeconfig.AddressResolver
	access      AccessCheck
	logger      log.Logger
}

// NewStore registers an item under the given prefix and name on the schema
// builder and returns a store for it. toUnchecked converts a stored config
// back to its raw form so updates can be applied to it. A nil logger defaults
// to a nop logger.
func NewStore[T any, U Unchecked[T]](
	sb *collections.SchemaBuilder,
	prefix collections.Prefix,
	name string,
	toUnchecked func(T) U,
	resolver feeconfig.AddressResolver,
	access AccessCheck,
	logger log.Logger,
) Store[T, U] {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Store[T, U]{
		name:        name,
		item:        collections.NewItem(sb, prefix, name, JSONValue[T](name)),
		toUnchecked: toUnchecked,
		resolver:    resolver,
		access:      access,
		logger:      logger,
	}
}

// Get returns the stored config. Returns collections.ErrNotFound before Init.
func (s Store[T, U]) Get(ctx context.Context) (T, error) {
	return s.item.Get(ctx)
}

// Init writes the initial config without an access check. The value must
// already be validated; use it at instantiation time only.
func (s Store[T, U]) Init(ctx context.Context, cfg T) error {
	return s.item.Set(ctx, cfg)
}

// Update applies apply to the unchecked form of the stored config, validates
// the result and stores it. The write happens only if the access check admits
// sender and the updated config validates.
func (s Store[T, U]) Update(ctx context.Context, sender sdk.AccAddress, apply func(U) U) (T, error) {
	var zero T

	if s.access != nil {
		if err := s.access(ctx, sender); err != nil {
			return zero, err
		}
	}

	current, err := s.item.Get(ctx)
	if err != nil {
		return zero, err
	}

	updated := apply(s.toUnchecked(current))
	checked, err := updated.Validate(s.resolver)
	if err != nil {
		return zero, errors.Wrapf(ErrInvalidConfig, "%s: %s", s.name, err)
	}

	if err := s.item.Set(ctx, checked); err != nil {
		return zero, err
	}
	s.logger.Info("config updated", "name", s.name, "sender", sender.String())
	return checked, nil
}

// NewUpdateConfigEvent returns the event a host should emit after a successful
// config update.
func NewUpdateConfigEvent(name string, sender sdk.AccAddress) sdk.Event {
	return sdk.NewEvent(EventTypeUpdateConfig,
		sdk.NewAttribute(AttributeKeyName, name),
		sdk.NewAttribute(AttributeKeySender, sender.String()),
	)
}
