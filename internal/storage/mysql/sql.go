package mysql

// created_at is left alone on overwrite so List keeps creation order.
const upsertHotelSQL = `
INSERT INTO hotels (id, doc)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  doc        = VALUES(doc),
  updated_at = CURRENT_TIMESTAMP(6)
`

const existsHotelSQL = `SELECT 1 FROM hotels WHERE id = ?`

const getHotelSQL = `SELECT doc FROM hotels WHERE id = ?`

const listHotelsSQL = `SELECT id, doc FROM hotels ORDER BY created_at, id`
