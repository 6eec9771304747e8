package dispatch

import (
	"context"
	"encoding/json"

	"aeon_dashboard/internal/model"
	"aeon_dashboard/internal/pkg"
)

func (d *Dispatcher) registerEmbedActions() {
	d.register("getEmbeds", d.getEmbeds)
	d.register("createEmbed", d.createEmbed)
	d.register("deleteEmbed", d.deleteEmbed)
}

func (d *Dispatcher) getEmbeds(ctx context.Context, p Params) (any, error) {
	return d.deps.Templates.List(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createEmbed(ctx context.Context, p Params) (any, error) {
	name, err := p.RequireString("name")
	if err != nil {
		return nil, err
	}

	fields := "[]"
	if raw, ok := p["fields"]; ok && raw != nil {
		items, ok := raw.([]any)
		if !ok {
			return nil, pkg.Validation("fields must be an array of {name, value, inline}")
		}
		parsed := make([]model.EmbedField, 0, len(items))
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, pkg.Validation("fields must be an array of {name, value, inline}")
			}
			f := model.EmbedField{}
			if s, ok := obj["name"].(string); ok {
				f.Name = s
			}
			if s, ok := obj["value"].(string); ok {
				f.Value = s
			}
			if b, ok := obj["inline"].(bool); ok {
				f.Inline = b
			}
			parsed = append(parsed, f)
		}
		encoded, err := json.Marshal(parsed)
		if err != nil {
			return nil, err
		}
		fields = string(encoded)
	}

	t := &model.MessageTemplate{
		GuildID:      d.guild(ctx, p),
		Name:         name,
		Title:        p.String("title"),
		Description:  p.String("description"),
		Color:        p.Int("color", 0),
		Footer:       p.String("footer"),
		ThumbnailURL: p.String("thumbnail"),
		ImageURL:     p.String("image"),
		Fields:       fields,
	}
	if err := d.deps.Templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *Dispatcher) deleteEmbed(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Templates.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}
