package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geministore.com/app/internal/http/flash"
	"geministore.com/app/internal/http/sessioncookie"
	"geministore.com/app/internal/imagestore"
	"geministore.com/app/internal/modules/accounts"
	"geministore.com/app/internal/modules/assistant"
	"geministore.com/app/internal/modules/cart"
	"geministore.com/app/internal/modules/catalog"
	"geministore.com/app/internal/modules/checkout"
	"geministore.com/app/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	r        *gin.Engine
	imageDir string
	accounts *accounts.Service
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()

	persist := store.NewMemory()
	cat := catalog.NewStore(persist)
	require.NoError(t, cat.Load(ctx))
	require.NoError(t, cat.Replace(ctx, catalog.Fallback()))

	accts := accounts.NewStore(persist)
	require.NoError(t, accts.Load(ctx))

	svc := accounts.NewService(accts, accounts.NewRegistry())
	imageDir := t.TempDir()
	secret := []byte("test-secret")
	r := NewRouter(Deps{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:        cat,
		CartSvc:        cart.NewService(cat),
		Finalizer:      checkout.NewFinalizer(cat),
		Accounts:       svc,
		Assistant:      assistant.NewService(nil),
		Images:         imagestore.NewLocal(imageDir, "/images"),
		Flash:          flash.NewCodec(secret, "gs_flash", false),
		SessionCookie:  sessioncookie.New(secret, "gs_session", false),
		StaticImageDir: "",
	})
	return testEnv{r: r, imageDir: imageDir, accounts: svc}
}

func newTestRouter(t *testing.T) *gin.Engine {
	return newTestEnv(t).r
}

// do sends a JSON request, carrying over any session cookie.
func do(t *testing.T, r *gin.Engine, method, path string, body any, cookies []*http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload), w.Body.String())
	}
	return w, payload
}

func sessionCookie(w *httptest.ResponseRecorder) []*http.Cookie {
	return namedCookies(w, "gs_session")
}

func flashCookie(w *httptest.ResponseRecorder) []*http.Cookie {
	return namedCookies(w, "gs_flash")
}

func namedCookies(w *httptest.ResponseRecorder, name string) []*http.Cookie {
	res := http.Response{Header: w.Header()}
	var out []*http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == name && ck.Value != "" {
			out = append(out, ck)
		}
	}
	return out
}

func register(t *testing.T, r *gin.Engine, name, email string) []*http.Cookie {
	t.Helper()
	w, _ := do(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"fullName":   name,
		"email":      email,
		"password":   "Passw0rd!",
		"rePassword": "Passw0rd!",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ck := sessionCookie(w)
	require.NotEmpty(t, ck)
	return ck
}

func loginAdmin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w, payload := do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": accounts.AdminEmail}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, payload["awaitingOtp"])

	w, _ = do(t, r, http.MethodPost, "/api/auth/otp", gin.H{
		"challengeId": payload["challengeId"],
		"otp":         accounts.AdminOTP,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ck := sessionCookie(w)
	require.NotEmpty(t, ck)
	return ck
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w, payload := do(t, r, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestProductsVisibility(t *testing.T) {
	r := newTestRouter(t)

	// shoppers: two of the twelve samples are out of stock
	w, payload := do(t, r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, payload["products"], 10)

	// admin sees everything
	admin := loginAdmin(t, r)
	w, payload = do(t, r, http.MethodGet, "/api/products", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, payload["products"], 12)
}

func TestProductsSearchAndCategory(t *testing.T) {
	r := newTestRouter(t)

	w, payload := do(t, r, http.MethodGet, "/api/products?search=drone", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := payload["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "SkyDrone Explorer", products[0].(map[string]any)["name"])

	w, payload = do(t, r, http.MethodGet, "/api/products?category=Accessories", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	// the second Accessories item has zero stock
	assert.Len(t, payload["products"], 1)
}

func TestCategories(t *testing.T) {
	r := newTestRouter(t)
	w, payload := do(t, r, http.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cats := payload["categories"].([]any)
	require.NotEmpty(t, cats)
	first := cats[0].(map[string]any)
	assert.Equal(t, "Accessories", first["name"])
	assert.NotEmpty(t, first["imageUrl"])
}

func TestCartRequiresAuth(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/api/cart", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/checkout", gin.H{}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	r := env.r
	ck := register(t, r, "Ada Lovelace", "ada@example.com")

	// two units of the laptop (999.99 each) waive shipping
	w, payload := do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "fallback-3"}, ck)
	require.Equal(t, http.StatusOK, w.Code)
	fl := payload["flash"].(map[string]any)
	assert.Equal(t, "LapPro UltraSlim X added to cart!", fl["message"])

	w, payload = do(t, r, http.MethodPatch, "/api/cart/items/fallback-3", gin.H{"quantity": 2}, ck)
	require.Equal(t, http.StatusOK, w.Code)
	cartView := payload["cart"].(map[string]any)
	assert.Equal(t, float64(2), cartView["count"])
	assert.InDelta(t, 1999.98, cartView["subtotal"], 0.001)
	assert.InDelta(t, 0.0, cartView["shippingFee"], 0.001)

	// browse with a filter; a confirmed order resets it
	w, _ = do(t, r, http.MethodGet, "/api/products?search=LapPro&category=Electronics", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)

	w, payload = do(t, r, http.MethodPost, "/api/checkout", gin.H{
		"name":          "Ada Lovelace",
		"phone":         "+90 555 123 4567",
		"addressLine1":  "1 Analytical Way",
		"city":          "London",
		"pincode":       "SW1A 1AA",
		"paymentMethod": "creditCard",
	}, ck)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	order := payload["order"].(map[string]any)
	assert.Contains(t, order["id"], "ORD-")
	assert.Equal(t, "Confirmed", order["status"])
	assert.InDelta(t, 1999.98*1.18, order["grandTotal"], 0.01)

	lines := order["items"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, "fallback-3", line["productId"])
	assert.Equal(t, float64(2), line["quantity"])
	assert.InDelta(t, 1999.98, line["lineTotal"], 0.001)

	details := order["checkoutDetails"].(map[string]any)
	assert.Equal(t, "creditCard", details["paymentMethod"])
	assert.Equal(t, "London", details["city"])

	// the browse filter was cleared along with the cart
	sid := strings.SplitN(ck[0].Value, ".", 2)[0]
	sess, ok := env.accounts.Registry().Get(sid)
	require.True(t, ok)
	term, category := sess.Filter()
	assert.Empty(t, term)
	assert.Empty(t, category)

	// stock went 5 -> 3 and the cart is empty again
	w, payload = do(t, r, http.MethodGet, "/api/cart", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), payload["cart"].(map[string]any)["count"])

	w, payload = do(t, r, http.MethodGet, "/api/products?search=LapPro", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	products := payload["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, float64(3), products[0].(map[string]any)["stock"])
}

func TestCartOutOfStockRejected(t *testing.T) {
	r := newTestRouter(t)
	ck := register(t, r, "Ada Lovelace", "ada@example.com")

	w, payload := do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "fallback-5"}, ck)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "GamerX Headset Elite is out of stock.", payload["error"])
}

func TestCheckoutValidation(t *testing.T) {
	r := newTestRouter(t)
	ck := register(t, r, "Ada Lovelace", "ada@example.com")

	w, payload := do(t, r, http.MethodPost, "/api/cart/items", gin.H{"productId": "fallback-1"}, ck)
	require.Equal(t, http.StatusOK, w.Code)

	w, payload = do(t, r, http.MethodPost, "/api/checkout", gin.H{
		"name":          "Ada",
		"phone":         "123",
		"addressLine1":  "x",
		"city":          "y",
		"pincode":       "zz",
		"paymentMethod": "creditCard",
	}, ck)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := payload["fields"].(map[string]any)
	assert.Equal(t, "Invalid phone format.", fields["phone"])
	assert.Equal(t, "Invalid pincode format.", fields["pincode"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	r := newTestRouter(t)
	ck := register(t, r, "Ada Lovelace", "ada@example.com")

	w, payload := do(t, r, http.MethodPost, "/api/checkout", gin.H{
		"name":          "Ada Lovelace",
		"phone":         "+90 555 123 4567",
		"addressLine1":  "1 Analytical Way",
		"city":          "London",
		"pincode":       "SW1A 1AA",
		"paymentMethod": "creditCard",
	}, ck)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Your cart is empty.", payload["error"])
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	w, payload := do(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"fullName":   "Ada Lovelace",
		"email":      "ada@example.com",
		"password":   "weak",
		"rePassword": "weak",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := payload["fields"].(map[string]any)
	assert.Contains(t, fields["password"], "min 8 chars")

	w, payload = do(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"fullName":   "Ada Lovelace",
		"email":      "ada@example.com",
		"password":   "Passw0rd!",
		"rePassword": "Different1!",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields = payload["fields"].(map[string]any)
	assert.Equal(t, "Passwords do not match.", fields["rePassword"])
}

func TestRegisterReservedEmail(t *testing.T) {
	r := newTestRouter(t)
	w, payload := do(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"fullName":   "Mallory",
		"email":      accounts.AdminEmail,
		"password":   "Passw0rd!",
		"rePassword": "Passw0rd!",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "An account with this email already exists.", payload["error"])
}

func TestLoginWrongOTP(t *testing.T) {
	r := newTestRouter(t)

	w, payload := do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": accounts.AdminEmail}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	challenge := payload["challengeId"]

	w, payload = do(t, r, http.MethodPost, "/api/auth/otp", gin.H{"challengeId": challenge, "otp": "000000"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid OTP.", payload["error"])

	// the challenge survives a wrong code
	w, _ = do(t, r, http.MethodPost, "/api/auth/otp", gin.H{"challengeId": challenge, "otp": accounts.AdminOTP}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout(t *testing.T) {
	r := newTestRouter(t)
	ck := register(t, r, "Ada Lovelace", "ada@example.com")

	w, payload := do(t, r, http.MethodPost, "/api/auth/logout", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, payload, "flash")
	fc := flashCookie(w)
	require.NotEmpty(t, fc, "logout must set the flash cookie")

	// the goodbye rides the cookie onto the next page, exactly once
	w, payload = do(t, r, http.MethodGet, "/api/products", nil, fc)
	require.Equal(t, http.StatusOK, w.Code)
	fl := payload["flash"].(map[string]any)
	assert.Equal(t, "You have been logged out.", fl["message"])
	assert.Equal(t, "info", fl["kind"])

	cleared := false
	res := http.Response{Header: w.Header()}
	for _, c := range res.Cookies() {
		if c.Name == "gs_flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "delivered flash cookie must be cleared")

	// a second load shows no flash
	w, payload = do(t, r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, payload, "flash")

	// the old cookie no longer resolves
	w, _ = do(t, r, http.MethodGet, "/api/cart", nil, ck)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/admin/products", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ck := register(t, r, "Ada Lovelace", "ada@example.com")
	w, payload := do(t, r, http.MethodGet, "/api/admin/products", nil, ck)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access Denied: Admin privileges required.", payload["error"])
}

func TestAdminProductLifecycle(t *testing.T) {
	r := newTestRouter(t)
	admin := loginAdmin(t, r)

	w, payload := do(t, r, http.MethodGet, "/api/admin/products", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	overview := payload["overview"].(map[string]any)
	assert.Equal(t, float64(12), overview["totalProducts"])
	assert.Equal(t, float64(2), overview["outOfStock"])

	w, payload = do(t, r, http.MethodPost, "/api/admin/products", gin.H{
		"name":        "Quantum Mouse",
		"description": "Tracks on any surface.",
		"price":       59.99,
		"category":    "Accessories",
		"stock":       4,
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	product := payload["product"].(map[string]any)
	id := product["id"].(string)
	assert.Contains(t, id, "admin-prod-")
	// no imageUrl given: a placeholder with the name is generated
	assert.Contains(t, product["imageUrl"], "Quantum")

	w, _ = do(t, r, http.MethodPut, "/api/admin/products/"+id+"/stock", gin.H{"stock": 0}, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w, payload = do(t, r, http.MethodPut, "/api/admin/products/"+id+"/stock", gin.H{"stock": -1}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Stock cannot be negative.", payload["error"])

	w, payload = do(t, r, http.MethodDelete, "/api/admin/products/"+id, nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product deleted successfully.", payload["flash"].(map[string]any)["message"])

	w, _ = do(t, r, http.MethodDelete, "/api/admin/products/"+id, nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeleteRemovesUploadedImage(t *testing.T) {
	env := newTestEnv(t)
	r := env.r
	admin := loginAdmin(t, r)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":        "Quantum Mouse",
		"description": "Tracks on any surface.",
		"price":       "59.99",
		"category":    "Accessories",
		"stock":       "4",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", "mouse.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range admin {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	product := payload["product"].(map[string]any)
	imageURL := product["imageUrl"].(string)
	require.True(t, strings.HasPrefix(imageURL, "/images/"), imageURL)

	stored := filepath.Join(env.imageDir, path.Base(imageURL))
	_, err = os.Stat(stored)
	require.NoError(t, err, "uploaded image must land on disk")

	w2, _ := do(t, r, http.MethodDelete, "/api/admin/products/"+product["id"].(string), nil, admin)
	require.Equal(t, http.StatusOK, w2.Code)

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err), "image must be removed with its product")
}

func TestAdminAddProductRejectsBadPrice(t *testing.T) {
	r := newTestRouter(t)
	admin := loginAdmin(t, r)

	w, payload := do(t, r, http.MethodPost, "/api/admin/products", gin.H{
		"name":        "Freebie",
		"description": "Worthless.",
		"price":       0,
		"category":    "Accessories",
		"stock":       1,
	}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Price must be positive.", payload["error"])
}

func TestChatDisabled(t *testing.T) {
	r := newTestRouter(t)

	w, payload := do(t, r, http.MethodGet, "/api/chat", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, assistant.UnavailableMessage, payload["text"])
	assert.Equal(t, "error", payload["sender"])

	w, payload = do(t, r, http.MethodPost, "/api/chat", gin.H{"message": "hello"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, assistant.UnavailableMessage, payload["text"])
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/healthz", nil, nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
