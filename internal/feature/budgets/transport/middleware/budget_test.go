package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "cashtrackr_backend/internal/feature/auth/transport/middleware"
	"cashtrackr_backend/internal/feature/budgets/domain/entity"
	"cashtrackr_backend/internal/feature/budgets/usecase"
)

// mockBudgetFinder is a mock implementation of the BudgetFinder interface.
type mockBudgetFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Budget, error)
}

func (m *mockBudgetFinder) FindByID(ctx context.Context, id uint) (*entity.Budget, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, usecase.ErrBudgetNotFound
}

// asUser injects an authenticated identity before the chain runs.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authmw.ContextUserKey, authmw.Identity{ID: id, Name: "Juan", Email: "juan@example.com"})
	}
}

func performGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateBudgetID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/budgets/:budgetId", ValidateBudgetID(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"numeric id passes", "/budgets/12", http.StatusOK},
		{"non-numeric id", "/budgets/abc", http.StatusBadRequest},
		{"zero id", "/budgets/0", http.StatusBadRequest},
		{"negative id", "/budgets/-3", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performGet(r, tt.path)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				var resp map[string][]map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Len(t, resp["errors"], 1)
				assert.Equal(t, "ID no válido", resp["errors"][0]["message"])
			}
		})
	}
}

func TestValidateBudgetExists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stored := &entity.Budget{ID: 12, Name: "Vacaciones", Amount: 500, UserID: 7}
	finder := &mockBudgetFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Budget, error) {
			if id == stored.ID {
				return stored, nil
			}
			return nil, usecase.ErrBudgetNotFound
		},
	}

	newRouter := func(f BudgetFinder) *gin.Engine {
		r := gin.New()
		r.GET("/budgets/:budgetId", ValidateBudgetID(), ValidateBudgetExists(f), func(c *gin.Context) {
			budget, ok := CurrentBudget(c)
			require.True(t, ok, "budget missing from context")
			c.JSON(http.StatusOK, budget)
		})
		return r
	}

	t.Run("existing budget is attached to the context", func(t *testing.T) {
		w := performGet(newRouter(finder), "/budgets/12")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp entity.Budget
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, stored.ID, resp.ID)
		assert.Equal(t, "Vacaciones", resp.Name)
	})

	t.Run("unknown budget", func(t *testing.T) {
		w := performGet(newRouter(finder), "/budgets/99")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Presupuesto no encontrado", resp["error"])
	})

	t.Run("storage failure", func(t *testing.T) {
		failing := &mockBudgetFinder{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Budget, error) {
				return nil, errors.New("connection reset")
			},
		}

		w := performGet(newRouter(failing), "/budgets/12")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Hubo un error", resp["error"])
	})
}

func TestHasAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stored := &entity.Budget{ID: 12, Name: "Vacaciones", Amount: 500, UserID: 7}
	finder := &mockBudgetFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Budget, error) {
			return stored, nil
		},
	}

	newRouter := func(userID uint) *gin.Engine {
		r := gin.New()
		r.GET("/budgets/:budgetId",
			asUser(userID), ValidateBudgetID(), ValidateBudgetExists(finder), HasAccess(),
			func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("owner passes", func(t *testing.T) {
		w := performGet(newRouter(7), "/budgets/12")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("another user's budget", func(t *testing.T) {
		w := performGet(newRouter(8), "/budgets/12")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Acción no válida", resp["error"])
	})

	t.Run("no identity in context", func(t *testing.T) {
		r := gin.New()
		r.GET("/budgets/:budgetId",
			ValidateBudgetID(), ValidateBudgetExists(finder), HasAccess(),
			func(c *gin.Context) { c.Status(http.StatusOK) })

		w := performGet(r, "/budgets/12")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
