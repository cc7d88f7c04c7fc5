package profile

import (
	"context"
	"errors"

	"shelf-auth/internal/auth"
	"shelf-auth/internal/logger"
)

// Reconciler guarantees exactly one profile row exists for an
// authenticated identity. It is the ONLY place profiles are created;
// both password sign-in and the OAuth callback go through it.
type Reconciler struct {
	store Store
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// EnsureProfile creates the profile for identity on first sight.
// The insert is atomic; a concurrent creation for the same email is
// observed as created=false, never as an error.
func (r *Reconciler) EnsureProfile(
	ctx context.Context,
	identity *auth.Identity,
) (created bool, err error) {

	if identity == nil || identity.Email == "" {
		return false, errors.New("reconcile: identity has no email")
	}

	existing, err := r.store.FindByEmail(ctx, identity.Email)
	if err != nil {
		return false, auth.NewError(auth.KindProfileWrite, err.Error())
	}
	if existing != nil {
		return false, nil
	}

	// The lookup is only a fast path. Insert is the authority: a
	// concurrent creation between lookup and insert surfaces as a
	// conflict, which Insert absorbs as created=false.
	created, err = r.store.Insert(ctx, Profile{
		Email:    identity.Email,
		Username: identity.Username(),
	})
	if err != nil {
		return false, auth.NewError(auth.KindProfileWrite, err.Error())
	}

	if created {
		logger.Info("profile created", map[string]any{
			"email": identity.Email,
		})
	}

	return created, nil
}
