package repository

const (
	createUserQuery = `INSERT INTO users (email, name, password, created_at, updated_at)
						VALUES ($1, $2, $3, now(), now())
						RETURNING *`
	getUserByEmailQuery = `SELECT user_id, email, name, password, created_at, updated_at
						FROM users WHERE email = $1`
	getUserByIDQuery = `SELECT user_id, email, name, password, created_at, updated_at
						FROM users WHERE user_id = $1`
	updateUserNameQuery = `UPDATE users SET name = $2, updated_at = now() WHERE user_id = $1
						RETURNING user_id, email, name, password, created_at, updated_at`
	updateUserPasswordQuery = `UPDATE users SET password = $2, updated_at = now() WHERE user_id = $1`
)
