package dispatch

import (
	"context"

	"aeon_dashboard/internal/model"
)

func (d *Dispatcher) registerTopicActions() {
	d.register("getInfoTopics", d.getInfoTopics)
	d.register("createInfoTopic", d.createInfoTopic)
	d.register("updateInfoTopic", d.updateInfoTopic)
	d.register("deleteInfoTopic", d.deleteInfoTopic)
}

type topicSubgroup struct {
	Subcategory string            `json:"subcategory"`
	Topics      []model.InfoTopic `json:"topics"`
}

type topicGroup struct {
	Section       string          `json:"section"`
	Subcategories []topicSubgroup `json:"subcategories"`
}

// groupTopics shapes the flat, pre-sorted topic list into the section →
// subcategory tree the UI renders.
func groupTopics(rows []model.InfoTopic) []topicGroup {
	var out []topicGroup
	for _, t := range rows {
		if len(out) == 0 || out[len(out)-1].Section != t.Section {
			out = append(out, topicGroup{Section: t.Section})
		}
		g := &out[len(out)-1]
		if len(g.Subcategories) == 0 || g.Subcategories[len(g.Subcategories)-1].Subcategory != t.Subcategory {
			g.Subcategories = append(g.Subcategories, topicSubgroup{Subcategory: t.Subcategory})
		}
		sub := &g.Subcategories[len(g.Subcategories)-1]
		sub.Topics = append(sub.Topics, t)
	}
	return out
}

func (d *Dispatcher) getInfoTopics(ctx context.Context, p Params) (any, error) {
	rows, err := d.deps.Topics.List(ctx, d.guild(ctx, p))
	if err != nil {
		return nil, err
	}
	if p.Bool("grouped", true) {
		return groupTopics(rows), nil
	}
	return rows, nil
}

func (d *Dispatcher) createInfoTopic(ctx context.Context, p Params) (any, error) {
	section, err := p.RequireString("section")
	if err != nil {
		return nil, err
	}
	topicID, err := p.RequireString("topicId")
	if err != nil {
		return nil, err
	}
	name, err := p.RequireString("name")
	if err != nil {
		return nil, err
	}

	t := &model.InfoTopic{
		GuildID:     d.guild(ctx, p),
		Section:     section,
		Subcategory: p.String("subcategory"),
		TopicID:     topicID,
		Name:        name,
		Title:       p.String("title"),
		Description: p.String("description"),
		Color:       p.Int("color", 0),
	}
	if err := d.deps.Topics.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *Dispatcher) updateInfoTopic(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	for param, column := range map[string]string{
		"section":     "section",
		"subcategory": "subcategory",
		"name":        "name",
		"title":       "title",
		"description": "description",
	} {
		if p.Has(param) {
			updates[column] = p.String(param)
		}
	}
	if p.Has("color") {
		updates["color"] = p.Int("color", 0)
	}
	if len(updates) == 0 {
		return nil, errNoUpdatableFields
	}

	if err := d.deps.Topics.Update(ctx, d.guild(ctx, p), id, updates); err != nil {
		return nil, err
	}
	return map[string]any{"updated": true}, nil
}

func (d *Dispatcher) deleteInfoTopic(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Topics.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
