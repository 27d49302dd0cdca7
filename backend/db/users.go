package db

import (
	"database/sql"

	"civictrack/backend/server/api"
	"civictrack/backend/util"
	"civictrack/common"

	"github.com/apex/log"
)

// CreateOrUpdateUser upserts a user profile. Duplicate emails across
// profiles are allowed; the leaderboard merges them at read time.
func CreateOrUpdateUser(db *sql.DB, u *api.UserArgs) (*api.UserResp, error) {
	created := false
	{
		var id string
		err := db.QueryRow(`SELECT id FROM users WHERE id = ?`, u.Id).Scan(&id)
		if err == sql.ErrNoRows {
			created = true
		} else if err != nil {
			log.Errorf("Error getting user with id %s: %v", u.Id, err)
			return nil, err
		}
	}

	role := u.Role
	if role == "" {
		role = "citizen"
	}
	result, err := db.Exec(`INSERT INTO users (id, email, name, role, department_id, wallet) VALUES (?, ?, ?, ?, ?, ?)
	                        ON DUPLICATE KEY UPDATE email=?, name=?, role=?, department_id=?, wallet=?`,
		u.Id, u.Email, u.Name, role, u.DepartmentID, u.Wallet,
		u.Email, u.Name, role, u.DepartmentID, u.Wallet)
	common.LogResult("updateUser", result, err, false)
	if err != nil {
		return nil, err
	}

	if role == "worker" {
		if err := CreateOrUpdateWorker(db, u.Id, u.Name, u.DepartmentID); err != nil {
			return nil, err
		}
	}

	return &api.UserResp{
		Id:      u.Id,
		Alias:   util.AnonAlias(u.Id),
		Created: created,
	}, nil
}

// GetUserWallet returns the on-chain address registered for a user, or
// empty when none is set.
func GetUserWallet(db *sql.DB, userID string) (string, error) {
	var wallet string
	err := db.QueryRow(`SELECT wallet FROM users WHERE id = ?`, userID).Scan(&wallet)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		log.Errorf("Error getting wallet for user %s: %v", userID, err)
		return "", err
	}
	return wallet, nil
}
