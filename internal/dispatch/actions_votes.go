package dispatch

import "context"

func (d *Dispatcher) registerVoteActions() {
	d.register("getActiveVotes", d.getActiveVotes)
	d.register("getAllVotes", d.getAllVotes)
	d.register("createVote", d.createVote)
	d.register("deleteVote", d.deleteVote)
	d.register("castVote", d.castVote)
	d.register("getVoteResults", d.getVoteResults)
}

func (d *Dispatcher) getActiveVotes(ctx context.Context, p Params) (any, error) {
	return d.deps.Votes.Active(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) getAllVotes(ctx context.Context, p Params) (any, error) {
	return d.deps.Votes.All(ctx, d.guild(ctx, p))
}

func (d *Dispatcher) createVote(ctx context.Context, p Params) (any, error) {
	question, err := p.RequireString("question")
	if err != nil {
		return nil, err
	}
	endTime, _ := p.Time("endTime")
	return d.deps.Votes.Create(ctx, d.guild(ctx, p), question, p.StringSlice("options"), endTime)
}

func (d *Dispatcher) deleteVote(ctx context.Context, p Params) (any, error) {
	id, err := p.RequireUint("id")
	if err != nil {
		return nil, err
	}
	if err := d.deps.Votes.Delete(ctx, d.guild(ctx, p), id); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true}, nil
}

func (d *Dispatcher) castVote(ctx context.Context, p Params) (any, error) {
	voteID, err := p.RequireUint("voteId")
	if err != nil {
		return nil, err
	}
	userID, err := p.RequireString("userId")
	if err != nil {
		return nil, err
	}
	optionIndex := p.Int("optionIndex", -1)
	return d.deps.Votes.Cast(ctx, d.guild(ctx, p), voteID, userID, optionIndex)
}

func (d *Dispatcher) getVoteResults(ctx context.Context, p Params) (any, error) {
	voteID, err := p.RequireUint("voteId")
	if err != nil {
		return nil, err
	}
	return d.deps.Votes.Results(ctx, d.guild(ctx, p), voteID)
}
