package profile

import "context"

type Repository interface {
	LoadProfile(ctx context.Context) Profile
	SaveProfile(ctx context.Context, p Profile)
}
