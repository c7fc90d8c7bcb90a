package service

import (
	"Inkpost/internal/api/dto"
	"Inkpost/internal/model"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

func toAuthorDTO(user *model.User, store FileStore) dto.AuthorDTO {
	if user == nil {
		return dto.AuthorDTO{}
	}
	return dto.AuthorDTO{
		ID:       user.ID,
		Username: user.Username,
		Profile:  toProfileDTO(&user.Profile, store),
	}
}

func toProfileDTO(p *model.Profile, store FileStore) dto.ProfileDTO {
	image := p.Image
	if image == "" {
		image = model.DefaultProfileImage
	}
	return dto.ProfileDTO{
		Image: store.PublicURL(image),
		Bio:   p.Bio,
	}
}

func toUserDTO(user *model.User, store FileStore) *dto.UserDTO {
	res := &dto.UserDTO{}
	_ = copier.Copy(res, user)
	res.Profile = toProfileDTO(&user.Profile, store)
	return res
}

func toPostDTO(post *model.Post, store FileStore) *dto.PostDTO {
	res := &dto.PostDTO{}
	_ = copier.Copy(res, post)

	content := post.Content
	if content == "" {
		content = "[]"
	}
	res.Content = json.RawMessage(content)

	if post.Thumbnail != nil && *post.Thumbnail != "" {
		u := store.PublicURL(*post.Thumbnail)
		res.Thumbnail = &u
	} else {
		res.Thumbnail = nil
	}

	res.Author = toAuthorDTO(post.User, store)
	res.Tags = make([]dto.TagDTO, 0, len(post.Tags))
	for _, t := range post.Tags {
		res.Tags = append(res.Tags, dto.TagDTO{ID: t.ID, Name: t.Name})
	}
	return res
}

func toPostDTOs(posts []*model.Post, store FileStore) []*dto.PostDTO {
	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostDTO(p, store))
	}
	return res
}
