package models

import (
	"errors"
	"time"

	"github.com/Rahulstark2/blogging-platform-backend/log"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Post struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"not null"`
	Content   string         `gorm:"not null"`
	Tags      pq.StringArray `gorm:"type:text[]"`
	AuthorID  uint           `gorm:"index;not null"`
	Author    User           `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func CreatePost(post *Post) error {
	log.Debugf("creating post author=%d title=%q", post.AuthorID, post.Title)
	if err := DB.Create(post).Error; err != nil {
		log.Errorf("failed creating post, reason=%v", err)
		return err
	}
	return nil
}

func ListPosts() ([]Post, error) {
	var posts []Post
	if err := DB.Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		log.Errorf("failed listing posts, reason=%v", err)
		return nil, err
	}
	return posts, nil
}

func GetPost(id uint) (*Post, error) {
	log.Debugf("getting post id=%d", id)
	var post Post
	if err := DB.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func UpdatePost(post *Post) error {
	log.Debugf("updating post id=%d", post.ID)
	if err := DB.Model(post).Updates(map[string]any{
		"title":   post.Title,
		"content": post.Content,
		"tags":    post.Tags,
	}).Error; err != nil {
		log.Errorf("failed updating post id=%d, reason=%v", post.ID, err)
		return err
	}
	return nil
}

func DeletePost(id uint) error {
	log.Debugf("deleting post id=%d", id)
	res := DB.Delete(&Post{}, id)
	if res.Error != nil {
		log.Errorf("failed deleting post id=%d, reason=%v", id, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
