package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			type,
			amount,
			description,
			category_id,
			date,
			method,
			created_at,
			updated_at
		) VALUES (
			:id,
			:type,
			:amount,
			:description,
			:category_id,
			:date,
			:method,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			type,
			amount,
			description,
			category_id,
			date,
			method,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactions = `
		SELECT
			id,
			type,
			amount,
			description,
			category_id,
			date,
			method,
			created_at,
			updated_at
		FROM transactions
		ORDER BY date DESC, created_at DESC
	`

	queryGetTransactionsByMonth = `
		SELECT
			id,
			type,
			amount,
			description,
			category_id,
			date,
			method,
			created_at,
			updated_at
		FROM transactions
		WHERE
			date >= make_date(:year, :month, 1)
			AND date < make_date(:year, :month, 1) + interval '1 month'
		ORDER BY date DESC, created_at DESC
	`

	queryGetTransactionsByYear = `
		SELECT
			id,
			type,
			amount,
			description,
			category_id,
			date,
			method,
			created_at,
			updated_at
		FROM transactions
		WHERE
			date >= make_date(:year, 1, 1)
			AND date < make_date(:year, 1, 1) + interval '1 year'
		ORDER BY date DESC, created_at DESC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			type = :type,
			amount = :amount,
			description = :description,
			category_id = :category_id,
			date = :date,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
