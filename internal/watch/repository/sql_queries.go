package repository

const (
	addHistoryQuery = `INSERT INTO watch_history (user_id, movie_id, progress, watch_date)
					VALUES ($1, $2, $3, now()) RETURNING *`
	getHistoryQuery = `SELECT h.history_id, h.movie_id, h.progress, h.watch_date, m.title, m.year, m.duration, m.genre
					FROM watch_history h JOIN movies m ON m.movie_id = h.movie_id
					WHERE h.user_id = $1 ORDER BY h.watch_date DESC`
	updateProgressQuery = `UPDATE watch_history SET progress = $3, watch_date = now()
					WHERE history_id = $2 AND user_id = $1`
	addFavoriteQuery = `INSERT INTO favorites (user_id, movie_id, added_date)
					VALUES ($1, $2, now()) RETURNING *`
	findFavoriteQuery = `SELECT favorite_id, user_id, movie_id, added_date
					FROM favorites WHERE user_id = $1 AND movie_id = $2`
	getFavoritesQuery = `SELECT f.favorite_id, f.movie_id, f.added_date, m.title, m.year, m.duration, m.genre
					FROM favorites f JOIN movies m ON m.movie_id = f.movie_id
					WHERE f.user_id = $1 ORDER BY f.added_date DESC`
	removeFavoriteQuery = `DELETE FROM favorites WHERE favorite_id = $2 AND user_id = $1`
)
