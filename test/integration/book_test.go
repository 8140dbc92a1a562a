package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：图书模块集成测试
// 覆盖添加、列表、搜索、详情四个接口的完整HTTP流程

// TestAddBook 测试添加图书
func TestAddBook(t *testing.T) {
	_, _, token := SignupTestUser(t, "book_adder")

	t.Run("正常添加返回201", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":            "1984",
			"author":           "George Orwell",
			"genre":            "Dystopian",
			"description":      "关于极权社会的小说",
			"publication_year": 1949,
		}, token)

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)

		assert.NotZero(t, data.ID)
		assert.Equal(t, "1984", data.Title)
		assert.Equal(t, 0.0, data.AverageRating, "新书平均分为0")
		assert.Equal(t, 0, data.TotalReviews)
		assert.NotEmpty(t, data.CoverImage, "未指定封面时应使用占位图")
	})

	t.Run("未登录返回401", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":            "未授权的书",
			"author":           "作者",
			"genre":            "类型",
			"description":      "描述",
			"publication_year": 2020,
		}, "")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("缺少必填字段返回400", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": "只有标题",
		}, token)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestListBooks 测试图书列表
func TestListBooks(t *testing.T) {
	_, _, token := SignupTestUser(t, "book_lister")
	AddTestBook(t, token, "列表测试图书")

	t.Run("公开访问不需要登录", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, data.Total, int64(1))
		assert.Equal(t, 1, data.Page)
		assert.Equal(t, 10, data.PageSize, "缺省每页10条")
	})

	t.Run("分页参数", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?page=1&page_size=2", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(data.List), 2)
		assert.Equal(t, 2, data.PageSize)
	})

	t.Run("非法排序字段返回400", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books?sort_by=password", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestSearchBooks 测试图书搜索
func TestSearchBooks(t *testing.T) {
	_, _, token := SignupTestUser(t, "book_searcher")

	// 用唯一后缀避免与历史测试数据冲突
	unique := GenerateTestEmail("search")
	title := "搜索专用书" + unique
	AddTestBook(t, token, title)

	t.Run("按标题搜索", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/search?q="+url.QueryEscape(unique), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)

		require.Equal(t, int64(1), data.Total)
		assert.Equal(t, title, data.List[0].Title)
	})

	t.Run("无结果返回空列表", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/search?q=nonexistent_keyword_xyz", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, int64(0), data.Total)
	})

	t.Run("空关键词返回400", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/search", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestGetBookDetail 测试图书详情
func TestGetBookDetail(t *testing.T) {
	_, _, token := SignupTestUser(t, "book_viewer")
	bookID := AddTestBook(t, token, "详情测试图书")

	t.Run("查询成功", func(t *testing.T) {
		detail := GetTestBook(t, bookID)

		assert.Equal(t, "详情测试图书", detail.Book.Title)
		assert.Equal(t, 5, detail.Reviews.PageSize, "详情页书评缺省每页5条")
		assert.Empty(t, detail.Reviews.List)
	})

	t.Run("不存在的ID返回404", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, 99999999), "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("非数字ID返回400", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
