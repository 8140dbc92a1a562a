package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：测试辅助工具
// 这个文件包含集成测试的通用辅助函数，遵循DRY原则（Don't Repeat Yourself）
// 将重复的代码（HTTP请求、JSON解析）封装成可复用的函数

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
// StatusCode额外记录HTTP状态码(本服务按REST语义返回200/201/4xx/5xx)
type Response struct {
	StatusCode int
	Code       int             `json:"code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// UserData 用户公开信息
type UserData struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthData 注册/登录响应数据
type AuthData struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

// BookData 图书响应数据
type BookData struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	Description     string  `json:"description"`
	PublicationYear int     `json:"publication_year"`
	CoverImage      string  `json:"cover_image"`
	AverageRating   float64 `json:"average_rating"`
	TotalReviews    int     `json:"total_reviews"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List       []BookData `json:"list"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// ReviewData 书评响应数据
type ReviewData struct {
	ID      uint   `json:"id"`
	BookID  uint   `json:"book_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Reviewer struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"reviewer"`
}

// BookDetailData 图书详情响应数据
type BookDetailData struct {
	Book    BookData `json:"book"`
	Reviews struct {
		List       []ReviewData `json:"list"`
		Total      int64        `json:"total"`
		Page       int          `json:"page"`
		PageSize   int          `json:"page_size"`
		TotalPages int          `json:"total_pages"`
	} `json:"reviews"`
}

// doJSON 发送带JSON body的请求并解析响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	result := Response{StatusCode: resp.StatusCode}
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	t.Helper()
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	t.Helper()
	return doJSON(t, http.MethodPut, url, data, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	t.Helper()
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	t.Helper()
	return doJSON(t, http.MethodGet, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳确保邮箱唯一性，避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// SignupTestUser 注册测试用户并返回Token
// 注册接口成功即返回Token(注册即登录),不需要再调一次登录
func SignupTestUser(t *testing.T, name string) (userID uint, email string, token string) {
	t.Helper()

	email = GenerateTestEmail(name)
	resp := PostJSON(t, BaseURL+"/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": "Test1234",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, "注册失败: %s", resp.Message)
	require.Equal(t, 0, resp.Code, "注册失败: %s", resp.Message)

	var data AuthData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析注册响应失败")

	return data.User.ID, email, data.AccessToken
}

// AddTestBook 添加测试图书并返回图书ID
func AddTestBook(t *testing.T, token string, title string) uint {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":            title,
		"author":           "测试作者",
		"genre":            "测试类型",
		"description":      "集成测试用图书",
		"publication_year": 2020,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "添加图书失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")

	return data.ID
}

// SubmitTestReview 提交测试书评并返回书评ID
func SubmitTestReview(t *testing.T, token string, bookID uint, rating int, comment string) uint {
	t.Helper()

	url := fmt.Sprintf("%s/books/%d/reviews", BaseURL, bookID)
	resp := PostJSON(t, url, map[string]interface{}{
		"rating":  rating,
		"comment": comment,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "提交书评失败: %s", resp.Message)

	var data ReviewData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析书评响应失败")

	return data.ID
}

// GetTestBook 查询图书详情
func GetTestBook(t *testing.T, bookID uint) *BookDetailData {
	t.Helper()

	resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "查询图书失败: %s", resp.Message)

	var data BookDetailData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书详情失败")

	return &data
}
