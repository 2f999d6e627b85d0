package repository

const (
	createMovieQuery = `INSERT INTO movies (movie_id, title, description, year, genre, duration, uploader_id, file_path, poster_path, renditions)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '{}'::jsonb) RETURNING *`
	getMovieByIDQuery = `SELECT movie_id, title, description, year, genre, duration, uploader_id, upload_date, views, file_path, poster_path, renditions
					FROM movies WHERE movie_id = $1`
	incrementViewsQuery = `UPDATE movies SET views = views + 1 WHERE movie_id = $1
					RETURNING movie_id, title, description, year, genre, duration, uploader_id, upload_date, views, file_path, poster_path, renditions`
	listMoviesQuery = `SELECT movie_id, title, description, year, genre, duration, uploader_id, upload_date, views, file_path, poster_path, renditions
					FROM movies ORDER BY upload_date DESC OFFSET $1 LIMIT $2`
	getTotalMoviesQuery = `SELECT COUNT(movie_id) FROM movies`
	searchMoviesQuery = `SELECT movie_id, title, description, year, genre, duration, uploader_id, upload_date, views, file_path, poster_path, renditions
					FROM movies
					WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR genre ILIKE '%' || $1 || '%'
					ORDER BY upload_date DESC OFFSET $2 LIMIT $3`
	getTotalSearchQuery = `SELECT COUNT(movie_id) FROM movies
					WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR genre ILIKE '%' || $1 || '%'`
	getUserUploadsQuery = `SELECT movie_id, title, description, year, genre, duration, uploader_id, upload_date, views, file_path, poster_path, renditions
					FROM movies WHERE uploader_id = $1 ORDER BY upload_date DESC`
	deleteMovieQuery  = `DELETE FROM movies WHERE movie_id = $1 AND uploader_id = $2`
	addRenditionQuery = `UPDATE movies SET renditions = renditions || jsonb_build_object($2::text, $3::text) WHERE movie_id = $1`
)
