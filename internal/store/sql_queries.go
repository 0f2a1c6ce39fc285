package store

// Partition table names. Each table is an independent key-value partition
// mapping user_id to one serialized collection snapshot.
const (
	todosTable = "todos_by_user"
	cartTable  = "cart_by_user"
)

const (
	loadSnapshotFromTodos = `
		SELECT snapshot
		FROM todos_by_user
		WHERE user_id = $1;`

	saveSnapshotToTodos = `
		INSERT INTO todos_by_user (user_id, snapshot, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			snapshot   = excluded.snapshot,
			updated_at = excluded.updated_at;`

	clearSnapshotFromTodos = `
		DELETE FROM todos_by_user
		WHERE user_id = $1;`

	loadSnapshotFromCart = `
		SELECT snapshot
		FROM cart_by_user
		WHERE user_id = $1;`

	saveSnapshotToCart = `
		INSERT INTO cart_by_user (user_id, snapshot, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			snapshot   = excluded.snapshot,
			updated_at = excluded.updated_at;`

	clearSnapshotFromCart = `
		DELETE FROM cart_by_user
		WHERE user_id = $1;`
)
