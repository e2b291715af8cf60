package server

import (
	"context"
	"net/http"

	"golf-wager/internal/domain"
	"golf-wager/internal/service"

	"connectrpc.com/connect"
)

const WagerServicePath = "/golfwager.v1.WagerService/"

type WagerServer struct {
	courseSvc     *service.CourseService
	matchSvc      *service.MatchService
	settlementSvc *service.SettlementService
	historySvc    *service.HistoryService
}

func NewWagerServer(
	courseSvc *service.CourseService,
	matchSvc *service.MatchService,
	settlementSvc *service.SettlementService,
	historySvc *service.HistoryService,
) *WagerServer {
	return &WagerServer{courseSvc: courseSvc, matchSvc: matchSvc, settlementSvc: settlementSvc, historySvc: historySvc}
}

// NewWagerServiceHandler mounts every procedure under WagerServicePath.
func NewWagerServiceHandler(s *WagerServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(WagerServicePath+"ImportCourse", connect.NewUnaryHandler(WagerServicePath+"ImportCourse", s.ImportCourse, opts...))
	mux.Handle(WagerServicePath+"CreateMatch", connect.NewUnaryHandler(WagerServicePath+"CreateMatch", s.CreateMatch, opts...))
	mux.Handle(WagerServicePath+"RecordScore", connect.NewUnaryHandler(WagerServicePath+"RecordScore", s.RecordScore, opts...))
	mux.Handle(WagerServicePath+"AddPress", connect.NewUnaryHandler(WagerServicePath+"AddPress", s.AddPress, opts...))
	mux.Handle(WagerServicePath+"CompleteMatch", connect.NewUnaryHandler(WagerServicePath+"CompleteMatch", s.CompleteMatch, opts...))
	mux.Handle(WagerServicePath+"SettleMatch", connect.NewUnaryHandler(WagerServicePath+"SettleMatch", s.SettleMatch, opts...))
	mux.Handle(WagerServicePath+"GetAnnotations", connect.NewUnaryHandler(WagerServicePath+"GetAnnotations", s.GetAnnotations, opts...))
	mux.Handle(WagerServicePath+"GetPlayerHistory", connect.NewUnaryHandler(WagerServicePath+"GetPlayerHistory", s.GetPlayerHistory, opts...))
	mux.Handle(WagerServicePath+"GetLeaderboard", connect.NewUnaryHandler(WagerServicePath+"GetLeaderboard", s.GetLeaderboard, opts...))
	return WagerServicePath, mux
}

func (s *WagerServer) ImportCourse(ctx context.Context, req *connect.Request[ImportCourseRequest]) (*connect.Response[CourseResponse], error) {
	course, err := s.courseSvc.ImportCourse(ctx, req.Msg.CourseID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(courseResponse(course)), nil
}

func (s *WagerServer) CreateMatch(ctx context.Context, req *connect.Request[CreateMatchRequest]) (*connect.Response[MatchResponse], error) {
	match, err := s.matchSvc.CreateMatch(ctx, req.Msg.params())
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&MatchResponse{
		ID:        match.ID,
		CourseID:  match.CourseID,
		Status:    string(match.Status),
		CreatedAt: match.CreatedAt,
	}), nil
}

func (s *WagerServer) RecordScore(ctx context.Context, req *connect.Request[RecordScoreRequest]) (*connect.Response[Empty], error) {
	err := s.matchSvc.RecordScore(ctx, service.RecordScoreParams{
		MatchID:  req.Msg.MatchID,
		PlayerID: req.Msg.PlayerID,
		Hole:     req.Msg.Hole,
		Gross:    req.Msg.Gross,
		Tags:     req.Msg.Tags,
	})
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *WagerServer) AddPress(ctx context.Context, req *connect.Request[AddPressRequest]) (*connect.Response[PressResponse], error) {
	press, err := s.matchSvc.AddPress(ctx, req.Msg.MatchID, req.Msg.StartHole, domain.Team(req.Msg.Team))
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&PressResponse{
		ID:        press.ID,
		StartHole: press.StartHole,
		Team:      string(press.PressedByTeam),
	}), nil
}

func (s *WagerServer) CompleteMatch(ctx context.Context, req *connect.Request[MatchRequest]) (*connect.Response[Empty], error) {
	if err := s.matchSvc.CompleteMatch(ctx, req.Msg.MatchID); err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *WagerServer) SettleMatch(ctx context.Context, req *connect.Request[MatchRequest]) (*connect.Response[SettleMatchResponse], error) {
	st, err := s.settlementSvc.SettleMatch(ctx, req.Msg.MatchID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&SettleMatchResponse{
		MatchID:  st.Result.MatchID,
		Status:   string(st.Match.Status),
		Lines:    st.Result.Lines,
		Totals:   st.Result.Totals,
		Rejected: st.Result.Rejected,
	}), nil
}

func (s *WagerServer) GetAnnotations(ctx context.Context, req *connect.Request[MatchRequest]) (*connect.Response[AnnotationsResponse], error) {
	holes, err := s.settlementSvc.Annotations(ctx, req.Msg.MatchID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&AnnotationsResponse{Holes: holes}), nil
}

func (s *WagerServer) GetPlayerHistory(ctx context.Context, req *connect.Request[PlayerHistoryRequest]) (*connect.Response[PlayerHistoryResponse], error) {
	matches, err := s.historySvc.PlayerHistory(ctx, req.Msg.PlayerID)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&PlayerHistoryResponse{Matches: matches}), nil
}

func (s *WagerServer) GetLeaderboard(ctx context.Context, _ *connect.Request[Empty]) (*connect.Response[LeaderboardResponse], error) {
	entries, err := s.historySvc.Leaderboard(ctx)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}
	return connect.NewResponse(&LeaderboardResponse{Entries: entries}), nil
}
