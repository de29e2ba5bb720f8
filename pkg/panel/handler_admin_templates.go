package panel

import (
	"net/http"

	"github.com/zeronetwork/panelmock/pkg/query"
)

func adminListTemplates(c *Call) (int, any) {
	views := []*Template{}
	for _, t := range c.store.Templates {
		views = append(views, normalizeTemplate(t))
	}
	page, perPage := query.Page(c.Query)
	rows, meta := query.Slice(views, page, perPage)
	return http.StatusOK, map[string]any{"templates": rows, "pagination": meta}
}

func adminCreateTemplate(c *Call) (int, any) {
	var req CreateTemplateRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	now := c.store.NowMillis()
	t := &Template{
		ID:          c.store.NextID(),
		Name:        req.Name,
		Description: req.Description,
		ClientType:  req.ClientType,
		Format:      req.Format,
		Content:     req.Content,
		Variables:   req.Variables,
		Version:     1,
		IsDefault:   boolOr(req.IsDefault, false),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.store.Templates = append(c.store.Templates, t)
	return http.StatusCreated, map[string]any{"template": t}
}

func adminUpdateTemplate(c *Call) (int, any) {
	t := c.store.TemplateByID(c.ID("id"))
	if t == nil {
		return notFound("Template")
	}
	var req UpdateTemplateRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Format != nil {
		t.Format = *req.Format
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if req.Variables != nil {
		t.Variables = *req.Variables
	}
	if req.IsDefault != nil {
		t.IsDefault = *req.IsDefault
	}
	t.UpdatedAt = c.store.NowMillis()
	return http.StatusOK, map[string]any{"template": normalizeTemplate(t)}
}

// adminPublishTemplate bumps the version and snapshots the publish
// into the template's immutable history.
func adminPublishTemplate(c *Call) (int, any) {
	t := c.store.TemplateByID(c.ID("id"))
	if t == nil {
		return notFound("Template")
	}
	var req PublishTemplateRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	operator := req.Operator
	if operator == "" {
		operator = "Mock Operator"
	}
	normalizeTemplate(t)
	now := c.store.NowMillis()
	t.Version++
	t.IsPublished = true
	t.PublishedAt = now
	t.LastPublishedBy = req.Operator
	t.UpdatedAt = now

	entry := TemplateHistoryEntry{
		Version:     t.Version,
		Changelog:   req.Changelog,
		PublishedAt: now,
		PublishedBy: operator,
		Variables:   t.Variables,
	}
	c.store.TemplateHistory[t.ID] = append([]TemplateHistoryEntry{entry}, c.store.TemplateHistory[t.ID]...)

	return http.StatusOK, map[string]any{"template": t, "history": entry}
}

func adminTemplateHistory(c *Call) (int, any) {
	t := c.store.TemplateByID(c.ID("id"))
	if t == nil {
		return notFound("Template")
	}
	history := c.store.TemplateHistory[t.ID]
	if history == nil {
		history = []TemplateHistoryEntry{}
	}
	return http.StatusOK, map[string]any{"template_id": t.ID, "history": history}
}
