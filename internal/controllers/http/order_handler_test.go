package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-api/internal/domain"
	"storefront-api/internal/mocks"
	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newHandlerForTest(orders *services.OrderService, users *mocks.MockUserRepository) *Handler {
	return NewHandler(nil, nil, nil, nil, nil, orders, nil, users, []byte("test-secret"), zap.NewNop().Sugar())
}

func TestPlaceOrder_IDExhaustionIsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	orderRepo := new(mocks.MockOrderRepository)
	orderRepo.On("ExistsByPublicID", mock.Anything, mock.Anything).Return(true, nil)
	orders := services.NewOrderService(orderRepo, new(mocks.MockProductRepository), new(mocks.MockCartRepository), new(mocks.MockUserRepository), new(mocks.MockPublisher), zap.NewNop().Sugar())
	h := newHandlerForTest(orders, new(mocks.MockUserRepository))

	body := `{
		"cartItems": [{"productId": 1, "quantity": 1}],
		"billingDetails": {"email": "ali@example.com"},
		"paymentMethod": "card"
	}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(userContextKey, domain.User{ID: 7, Name: "Ali"})

	h.PlaceOrder(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileRoute_RequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newHandlerForTest(nil, new(mocks.MockUserRepository))
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
