package entity

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
	FullName string `json:"fullName"`
}

/*
Mysql Table

CREATE TABLE users (
	UserID INT AUTO_INCREMENT PRIMARY KEY,
	Username VARCHAR(50) NOT NULL UNIQUE,
	Password VARCHAR(255) NOT NULL,
	FullName VARCHAR(100) NOT NULL
);
*/
