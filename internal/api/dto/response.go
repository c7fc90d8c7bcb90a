package dto

// Response 统一响应包，Status 与 HTTP 状态码一致
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// PageDTO limit/offset 分页结果，Next/Previous 为绝对地址
type PageDTO[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ToggleDTO 点赞/收藏/关注等切换操作的结果
type ToggleDTO struct {
	Action string `json:"action"`
}
