package database

const (
	createTasksTableQuery = `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0
	)
`

	createUsersTableQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	)
`

	getTasksQuery = `SELECT id, description, completed FROM tasks ORDER BY rowid ASC`

	getTaskByIDQuery = `SELECT id, description, completed FROM tasks WHERE id = ?`

	insertTaskQuery = `INSERT INTO tasks (id, description, completed) VALUES (?, ?, ?)`

	updateTaskQuery = `UPDATE tasks SET completed = ? WHERE id = ?`

	deleteTasksQuery = `DELETE FROM tasks`

	getUsersQuery = `SELECT id, username, email, password FROM users ORDER BY rowid ASC`

	getUserByIDQuery = `SELECT id, username, email, password FROM users WHERE id = ?`

	countUsernameQuery = `SELECT COUNT(*) FROM users WHERE username = ?`

	insertUserQuery = `INSERT INTO users (id, username, email, password) VALUES (?, ?, ?, ?)`

	updateUserQuery = `UPDATE users SET username = ?, email = ?, password = ? WHERE id = ?`

	deleteUserQuery = `DELETE FROM users WHERE id = ?`

	deleteUsersQuery = `DELETE FROM users`

	countTasksQuery = `SELECT COUNT(*) FROM tasks`

	countUsersQuery = `SELECT COUNT(*) FROM users`
)
