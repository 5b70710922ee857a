package database

const SchemaSQL = `
-- Product catalog with inline image storage
CREATE TABLE IF NOT EXISTS products (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) NOT NULL,
    description TEXT,
    price DECIMAL(10,2) NOT NULL,
    stock INT NOT NULL DEFAULT 0,
    category VARCHAR(100) NOT NULL,
    image_name VARCHAR(255),
    image_type VARCHAR(100),
    image_data LONGBLOB,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_category (category),
    INDEX idx_name (name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Orders: id is the internal key, order_id the external token
CREATE TABLE IF NOT EXISTS orders (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    order_id VARCHAR(64) NOT NULL,
    customer_name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    status VARCHAR(50) NOT NULL,
    order_date DATE NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uk_order_id (order_id),
    INDEX idx_order_date (order_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

-- Order items: owned by orders (cascade), weak reference to products
CREATE TABLE IF NOT EXISTS order_items (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    order_id BIGINT NOT NULL,
    product_id BIGINT NOT NULL,
    quantity INT NOT NULL,
    unit_price DECIMAL(10,2) NOT NULL,
    subtotal DECIMAL(10,2) NOT NULL,
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
    INDEX idx_order_id (order_id),
    INDEX idx_product_id (product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

// SetupSchema creates the storefront tables
func (db *DB) SetupSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    name VARCHAR(255) NOT NULL,
		    description TEXT,
		    price DECIMAL(10,2) NOT NULL,
		    stock INT NOT NULL DEFAULT 0,
		    category VARCHAR(100) NOT NULL,
		    image_name VARCHAR(255),
		    image_type VARCHAR(100),
		    image_data LONGBLOB,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    INDEX idx_category (category),
		    INDEX idx_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_id VARCHAR(64) NOT NULL,
		    customer_name VARCHAR(255) NOT NULL,
		    email VARCHAR(255) NOT NULL,
		    status VARCHAR(50) NOT NULL,
		    order_date DATE NOT NULL,
		    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		    UNIQUE KEY uk_order_id (order_id),
		    INDEX idx_order_date (order_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS order_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_id BIGINT NOT NULL,
		    product_id BIGINT NOT NULL,
		    quantity INT NOT NULL,
		    unit_price DECIMAL(10,2) NOT NULL,
		    subtotal DECIMAL(10,2) NOT NULL,
		    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		    INDEX idx_order_id (order_id),
		    INDEX idx_product_id (product_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CleanupData removes all rows (but keeps schema)
func (db *DB) CleanupData() error {
	queries := []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM products",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all storefront tables
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS products",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
