//go:build e2e

package helper

import (
	"testing"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/domain/user"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/authtest"
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/tests/common/dbtest"

	"github.com/google/uuid"
)

// ShopperHelper creates users directly in the database and mints bearer
// tokens for them, standing in for the storefront's auth service.
type ShopperHelper struct {
	db  dbtest.DBLike
	jwt *authtest.JWTHelper
}

func NewShopperHelper(db dbtest.DBLike, cfg config.JWTConfig) *ShopperHelper {
	return &ShopperHelper{db: db, jwt: authtest.NewJWTHelper(cfg)}
}

func (h *ShopperHelper) Create(t *testing.T, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, h.db, email, "Test "+role.String(), role.String())
	return id, h.jwt.GenerateToken(t, id, role)
}

func (h *ShopperHelper) Customer(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()
	return h.Create(t, email, user.RoleCustomer)
}

func (h *ShopperHelper) Admin(t *testing.T) string {
	t.Helper()
	_, token := h.Create(t, "admin@mmartplus.test", user.RoleAdmin)
	return token
}
