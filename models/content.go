package models

import "time"

type BlogPost struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Excerpt     string    `json:"excerpt" yaml:"excerpt"`
	Content     string    `json:"content,omitempty" yaml:"content"`
	Author      string    `json:"author" yaml:"author"`
	PublishedAt time.Time `json:"publishedAt" yaml:"-"`
	ReadingTime int       `json:"readingTime" yaml:"readingTime"`
	Featured    bool      `json:"featured" yaml:"featured"`
	Category    string    `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Image       string    `json:"image" yaml:"image"`
}

type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type CoreValue struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type AboutPage struct {
	Headline string      `json:"headline" yaml:"headline"`
	Intro    string      `json:"intro" yaml:"intro"`
	Values   []CoreValue `json:"values" yaml:"values"`
	Story    []string    `json:"story" yaml:"story"`
	Location string      `json:"location" yaml:"location"`
	Phone    string      `json:"phone" yaml:"phone"`
	Email    string      `json:"email" yaml:"email"`
}
