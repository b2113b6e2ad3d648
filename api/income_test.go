package api

import (
	"testing"
	"time"

	"budget/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var incomeColumns = []string{"id", "amount", "frequency", "is_active", "start_date", "created_at", "updated_at", "deleted_at"}

func incomeRouter(c cache.Cache) *gin.Engine {
	h := NewIncomeHandler(c)
	r := gin.New()
	r.GET("/incomes", h.List)
	r.POST("/incomes", h.Create)
	r.PUT("/incomes/:id", h.Update)
	r.DELETE("/incomes/:id", h.Delete)
	return r
}

func TestIncomeHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	c := newTestCache()
	c.Set(t.Context(), cache.KeyDashboard, map[string]int{"stale": 1}, cache.TTLMedium)

	w := doJSON(incomeRouter(c), "POST", "/incomes", `{"amount":36500,"frequency":"monthly","start_date":"2025-01-01"}`)
	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "创建成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_active"])

	var stale map[string]int
	assert.False(t, c.Get(t.Context(), cache.KeyDashboard, &stale), "创建收入后看板缓存应被清除")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_CreateValidation(t *testing.T) {
	r := incomeRouter(newTestCache())

	for _, body := range []string{
		`{"amount":100,"frequency":"yearly"}`,
		`{"amount":0,"frequency":"daily"}`,
		`{"amount":100,"frequency":"daily","start_date":"01/02/2025"}`,
	} {
		w := doJSON(r, "POST", "/incomes", body)
		assert.Equal(t, 400, w.Code, body)
	}
}

func TestIncomeHandler_ListCached(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(2, 800, "weekly", true, now, now, now, nil).
			AddRow(1, 36500, "monthly", false, now.AddDate(0, -1, 0), now, now, nil))

	r := incomeRouter(newTestCache())
	w := doJSON(r, "GET", "/incomes", "")
	assert.Equal(t, 200, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 2)

	// 第二次读取走缓存
	w = doJSON(r, "GET", "/incomes", "")
	assert.Equal(t, 200, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(1, 1000, "daily", true, now, now, now, nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doJSON(incomeRouter(newTestCache()), "PUT", "/incomes/1", `{"amount":1500,"is_active":false}`)
	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1500.0, data["amount"])
	assert.Equal(t, false, data["is_active"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_UpdateNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows(incomeColumns))

	w := doJSON(incomeRouter(newTestCache()), "PUT", "/incomes/9", `{"amount":1500}`)
	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := incomeRouter(newTestCache())
	w := doJSON(r, "DELETE", "/incomes/1", "")
	assert.Equal(t, 200, w.Code)

	w = doJSON(r, "DELETE", "/incomes/1", "")
	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
