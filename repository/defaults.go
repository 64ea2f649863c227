package repository

import "gorm.io/gorm"

// 地址與付款方式共用的「唯一預設」程序，以entity型別參數化。
// 清除其他預設與設定新預設包在同一個事務內，避免同一使用者
// 並行請求後留下零筆或兩筆預設紀錄。
func setExclusiveDefault(db *gorm.DB, model interface{}, userID uint, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(model).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(model).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// 單一UPDATE清除該使用者其他預設紀錄，exceptID為0時全部清除
func clearDefault(db *gorm.DB, model interface{}, userID uint, exceptID uint) error {
	return db.Model(model).
		Where("user_id = ? AND is_default = ? AND id <> ?", userID, true, exceptID).
		Update("is_default", false).Error
}
