package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"noodlebar/internal/model"
	"noodlebar/internal/service"
	serviceMocks "noodlebar/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newTestApp(menuSvc service.MenuService, orderSvc service.OrderService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, nil, menuSvc, orderSvc)
	return app
}

func TestHealthz(t *testing.T) {
	app := newTestApp(nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("healthy", func(mt *mtest.T) {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		RegisterRoutes(app, mt.Client, nil, nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(mt, err)
		assert.Equal(mt, http.StatusOK, resp.StatusCode)
	})

	mt.Run("dependency down", func(mt *mtest.T) {
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		RegisterRoutes(app, mt.Client, nil, nil)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 6, Name: "HostUnreachable", Message: "no reachable servers",
		}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(mt, err)
		assert.Equal(mt, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestListMenu(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("List", mock.Anything, 10, 0).Return(&service.MenuListResult{
			Items: []model.MenuItem{{ID: "YM1", Name: "Yummy Noodles"}},
			Total: 1,
		}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body service.MenuListResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.Total)
		assert.Equal(t, "Yummy Noodles", body.Items[0].Name)
	})

	t.Run("invalid limit", func(t *testing.T) {
		app := newTestApp(new(serviceMocks.MockMenuService), nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu?limit=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateMenuItem(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("Create", mock.Anything, mock.MatchedBy(func(i *model.MenuItem) bool {
			return i.Name == "Yummy Noodles"
		})).Return(&model.MenuItem{ID: "gen-id", Name: "Yummy Noodles"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/menu",
			strings.NewReader(`{"name":"Yummy Noodles","cost":1099}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("missing name", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrNameRequired)

		req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrDuplicateName)

		req := httptest.NewRequest(http.MethodPost, "/menu",
			strings.NewReader(`{"name":"Yummy Noodles"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestGetMenuItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("Get", mock.Anything, "YM1").Return(&model.MenuItem{ID: "YM1"}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/YM1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("Get", mock.Anything, "missing").Return(nil, service.ErrNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}

func TestMenuSearch(t *testing.T) {
	t.Run("by ingredients", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("FindByIngredients", mock.Anything, "Peanuts", "Chillies").
			Return([]model.MenuItem{{ID: "YM1"}}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/search?ingredient=Peanuts&ingredient=Chillies", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ingredient required", func(t *testing.T) {
		app := newTestApp(new(serviceMocks.MockMenuService), nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/search", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestIngredientAnalysis(t *testing.T) {
	mMenu := new(serviceMocks.MockMenuService)
	app := newTestApp(mMenu, nil)

	mMenu.On("AnalyseIngredients", mock.Anything).Return([]model.IngredientCount{
		{Name: "Noodles", Count: 3},
		{Name: "Peanuts", Count: 2},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/analysis/ingredients", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []model.IngredientCount `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, "Noodles", body.Data[0].Name)
}

func TestAttachPhoto(t *testing.T) {
	mMenu := new(serviceMocks.MockMenuService)
	app := newTestApp(mMenu, nil)

	mMenu.On("AttachPhoto", mock.Anything, "YM1", mock.Anything, "photo.jpg", mock.Anything, mock.Anything).
		Return(&model.MenuItem{ID: "YM1", PhotoPath: "menu-photos/uuid.jpg"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("photo", "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/menu/YM1/photo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestGetPhoto(t *testing.T) {
	t.Run("redirects", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("PhotoURL", mock.Anything, "YM1").
			Return("https://storage/menu-photos/a.jpg?sig=x", nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/YM1/photo", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Location"), "menu-photos/a.jpg")
	})

	t.Run("no photo", func(t *testing.T) {
		mMenu := new(serviceMocks.MockMenuService)
		app := newTestApp(mMenu, nil)

		mMenu.On("PhotoURL", mock.Anything, "YM1").Return("", service.ErrNoPhoto)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/menu/YM1/photo", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPlaceOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		mOrder.On("Place", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.Items["YM1"] == 2
		})).Return(&model.Order{ID: uuid.NewString(), Items: map[string]int{"YM1": 2}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/orders",
			strings.NewReader(`{"items":{"YM1":2},"delivery_address":{"name":"Customer","address_one":"Melnea Cass Blvd","post_code":"02118"}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("no items", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		mOrder.On("Place", mock.Anything, mock.Anything).Return(nil, service.ErrNoItems)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		app := newTestApp(nil, new(serviceMocks.MockOrderService))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		id := uuid.NewString()
		mOrder.On("Get", mock.Anything, id).Return(nil, service.ErrOrderNotFound)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestOrderStatus(t *testing.T) {
	t.Run("set status", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		id := uuid.NewString()
		mOrder.On("SetStatus", mock.Anything, id, model.StatusCooking).
			Return(&model.OrderStatus{OrderID: id, Status: model.StatusCooking}, nil)

		req := httptest.NewRequest(http.MethodPut, "/orders/"+id+"/status",
			strings.NewReader(`{"status":"Cooking"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown status", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		id := uuid.NewString()
		mOrder.On("SetStatus", mock.Anything, id, "Teleported").Return(nil, service.ErrUnknownStatus)

		req := httptest.NewRequest(http.MethodPut, "/orders/"+id+"/status",
			strings.NewReader(`{"status":"Teleported"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("latest status", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		id := uuid.NewString()
		mOrder.On("Status", mock.Anything, id).
			Return(&model.OrderStatus{OrderID: id, Status: model.StatusInTransit}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/orders/"+id+"/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("cancel closed order", func(t *testing.T) {
		mOrder := new(serviceMocks.MockOrderService)
		app := newTestApp(nil, mOrder)

		id := uuid.NewString()
		mOrder.On("Cancel", mock.Anything, id).Return(nil, service.ErrOrderClosed)

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/orders/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}
