// Package api holds the collaborators shared by the front and admin route groups.
package api

import (
	"github.com/ocevave/ocevave/internal/accounts"
	"github.com/ocevave/ocevave/internal/auth"
	"github.com/ocevave/ocevave/internal/blobstore"
	"github.com/ocevave/ocevave/internal/catalog"
	"github.com/ocevave/ocevave/internal/content"
	"github.com/ocevave/ocevave/internal/orders"
	"github.com/ocevave/ocevave/internal/records"
	"gorm.io/gorm"
)

// Services bundles the domain services behind the HTTP API.
type Services struct {
	DB       *gorm.DB
	Accounts *accounts.Service
	Catalog  *catalog.Catalog
	Orders   *orders.Service
	Records  *records.Service
	Content  *content.Service
	Images   *blobstore.Images
	Resolver *auth.Resolver
	Gate     *auth.Gate
}
