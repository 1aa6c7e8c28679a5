package ports

import "context"

// ReloadablePackageProvider supplies the package prefixes being recompiled by a build session.
//
//go:generate go run go.uber.org/mock/mockgen -source=reloadable.go -destination=mocks/mock_reloadable.go -package=mocks
type ReloadablePackageProvider interface {
	ReloadablePackages(ctx context.Context) ([]string, error)
}
