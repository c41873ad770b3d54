package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			name,
			emoji,
			color,
			selected,
			priority,
			keywords,
			position,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:emoji,
			:color,
			:selected,
			:priority,
			:keywords,
			:position,
			:created_at,
			:updated_at
		)
	`

	querySeedCategory = `
		INSERT INTO categories (
			id,
			name,
			emoji,
			color,
			selected,
			priority,
			keywords,
			position,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:emoji,
			:color,
			:selected,
			:priority,
			:keywords,
			:position,
			:created_at,
			:updated_at
		)
		ON CONFLICT (id) DO NOTHING
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			emoji,
			color,
			selected,
			priority,
			keywords,
			position,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id
	`

	queryGetCategories = `
		SELECT
			id,
			name,
			emoji,
			color,
			selected,
			priority,
			keywords,
			position,
			created_at,
			updated_at
		FROM categories
		ORDER BY position ASC
	`

	queryUpdateCategorySelection = `
		UPDATE categories
		SET
			selected = :selected,
			updated_at = :updated_at
		WHERE id = :id
	`
)
