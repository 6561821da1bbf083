package qalog

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS qa_table (
			questionID INTEGER PRIMARY KEY AUTOINCREMENT,
			visible BOOL,
			cost REAL,
			question TEXT,
			response TEXT
		)
	`

	selectByQuestionQuery = `
		SELECT questionID FROM qa_table WHERE question = ?
	`

	insertEntryQuery = `
		INSERT INTO qa_table (visible, cost, question, response)
		VALUES (?, ?, ?, ?)
	`

	listQuestionsQuery = `
		SELECT question, response FROM qa_table ORDER BY questionID
	`

	listVisibleQuestionsQuery = `
		SELECT question, response FROM qa_table WHERE visible = 1 ORDER BY questionID
	`

	getEntryQuery = `
		SELECT questionID, visible, cost, question, response FROM qa_table WHERE questionID = ?
	`
)
