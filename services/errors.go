package services

// 領域錯誤分類。所有可預期的失敗都以這五種型別回傳，
// handlers層據此對應HTTP狀態碼，其餘錯誤一律視為未分類失敗。

// 輸入格式錯誤或超出限制
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// 唯一性衝突、重複預設或狀態已終止
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// 查無目標資料
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// 資料擁有者與請求者不符
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// 帳號存在但密碼驗證失敗
type InvalidCredentialsError struct {
	Message string
}

func (e *InvalidCredentialsError) Error() string { return e.Message }
