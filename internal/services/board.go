package services

import (
	"errors"
	"sort"

	"github.com/Eman-Abukhater/kanban-board-backend/internal/config"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/models"
	"github.com/Eman-Abukhater/kanban-board-backend/internal/utils"
	"github.com/Eman-Abukhater/kanban-board-backend/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardService struct {
	db      *gorm.DB
	uploads *UploadStore
	jwtCfg  *config.JWTConfig
}

func NewBoardService(db *gorm.DB, uploads *UploadStore, jwtCfg *config.JWTConfig) *BoardService {
	return &BoardService{db: db, uploads: uploads, jwtCfg: jwtCfg}
}

type CreateBoardRequest struct {
	ProjectName string `json:"projectName" binding:"required"`
	FkPoID      uint   `json:"fkpoid" binding:"required"`
	Description string `json:"description"`
	AddedBy     string `json:"addedby"`
	AddedByID   uint   `json:"addedbyid"`
	MemberIDs   []uint `json:"memberIds"`
}

type UpdateBoardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Progress    *int    `json:"progress"`
	MemberIDs   *[]uint `json:"memberIds"`
}

// ListByProject returns the boards of one project, newest first.
func (s *BoardService) ListByProject(projectID uint) ([]BoardRow, error) {
	var boards []models.Board
	if err := s.db.Preload("Members").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}

	rows := make([]BoardRow, 0, len(boards))
	for i := range boards {
		rows = append(rows, boardRow(&boards[i]))
	}
	return rows, nil
}

// Create upserts the project by its caller-supplied id, creates the board,
// seeds the three default lists at positions 0..2 and attaches the initial
// members. Duplicate member ids are ignored. One transaction.
func (s *BoardService) Create(req *CreateBoardRequest) (*BoardRow, error) {
	var boardID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		project := models.Project{
			ID:     req.FkPoID,
			Name:   req.ProjectName,
			Status: "open",
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&project).Error; err != nil {
			return err
		}

		addedBy := req.AddedBy
		if addedBy == "" {
			addedBy = "System"
		}

		board := models.Board{
			ProjectID:   req.FkPoID,
			Title:       req.ProjectName,
			Description: req.Description,
			Status:      models.BoardOpen,
			Progress:    0,
			AddedBy:     addedBy,
			AddedByID:   req.AddedByID,
		}
		if err := tx.Create(&board).Error; err != nil {
			return err
		}
		boardID = board.ID

		for i, name := range models.DefaultListNames {
			list := models.List{BoardID: board.ID, Name: name, Position: i}
			if err := tx.Create(&list).Error; err != nil {
				return err
			}
		}

		return attachMembers(tx, board.ID, req.MemberIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.rowByID(boardID)
}

// Update applies a partial board update. A memberIds field replaces the whole
// membership (delete-all-then-insert, last writer wins).
func (s *BoardService) Update(boardID uint, req *UpdateBoardRequest) (*BoardRow, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board
		if err := tx.First(&board, boardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("board not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		// A closed board's progress is pinned at 100; progress patches
		// apply to open boards only.
		if req.Progress != nil && board.Status != models.BoardClosed {
			updates["progress"] = clampProgress(*req.Progress)
		}
		if len(updates) > 0 {
			if err := tx.Model(&board).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.MemberIDs != nil {
			if err := tx.Where("board_id = ?", board.ID).Delete(&models.BoardMember{}).Error; err != nil {
				return err
			}
			if err := attachMembers(tx, board.ID, *req.MemberIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.rowByID(boardID)
}

// Delete removes the board and its whole subtree: for every list the tasks,
// tags and comments of every card, then the cards, then the lists, then the
// membership rows, then the board itself. Atomic; a partial cascade is never
// observable.
func (s *BoardService) Delete(boardID uint) error {
	var imagePaths []string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board
		if err := tx.First(&board, boardID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("board not found")
			}
			return err
		}

		var listIDs []uint
		if err := tx.Model(&models.List{}).
			Where("board_id = ?", board.ID).
			Pluck("id", &listIDs).Error; err != nil {
			return err
		}

		if len(listIDs) > 0 {
			if err := tx.Model(&models.Card{}).
				Where("list_id IN ? AND image_path != ''", listIDs).
				Pluck("image_path", &imagePaths).Error; err != nil {
				return err
			}

			for _, listID := range listIDs {
				if err := deleteListSubtree(tx, listID); err != nil {
					return err
				}
			}
			if err := tx.Where("board_id = ?", board.ID).Delete(&models.List{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("board_id = ?", board.ID).Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, board.ID).Error
	})
	if err != nil {
		return err
	}

	for _, path := range imagePaths {
		s.uploads.Remove(path)
	}
	return nil
}

// Kanban assembles the full tree for one board, keyed by external id. The
// progress is recomputed from the live tree on every read; the cached column
// is refreshed when it drifted (open boards only).
func (s *BoardService) Kanban(externalID string) (*KanbanView, error) {
	var board models.Board
	if err := s.db.Where("external_id = ?", externalID).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("board not found")
		}
		return nil, err
	}

	progress, err := ComputeProgress(s.db, board.ID)
	if err != nil {
		return nil, err
	}
	if board.Status == models.BoardOpen && progress != board.Progress {
		if err := s.db.Model(&board).Update("progress", progress).Error; err != nil {
			return nil, err
		}
	}
	if board.Status == models.BoardClosed {
		progress = 100
	}

	lists, err := s.assembleLists(board.ID)
	if err != nil {
		return nil, err
	}

	return &KanbanView{
		FkBoardID:   board.ExternalID,
		Title:       board.Title,
		Description: board.Description,
		Status:      board.Status,
		Progress:    progress,
		Lists:       lists,
	}, nil
}

// assembleLists loads the lists of a board with their cards and the cards'
// children, in display order.
func (s *BoardService) assembleLists(boardID uint) ([]ListView, error) {
	var lists []models.List
	if err := s.db.Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}

	listIDs := make([]uint, len(lists))
	for i, l := range lists {
		listIDs[i] = l.ID
	}

	var cards []models.Card
	if len(listIDs) > 0 {
		if err := s.db.Where("list_id IN ?", listIDs).
			Order("position ASC").
			Find(&cards).Error; err != nil {
			return nil, err
		}
	}

	cardIDs := make([]uint, len(cards))
	for i, c := range cards {
		cardIDs[i] = c.ID
	}

	tasksByCard := make(map[uint][]models.Task)
	tagsByCard := make(map[uint][]models.Tag)
	commentsByCard := make(map[uint][]models.Comment)

	if len(cardIDs) > 0 {
		var tasks []models.Task
		if err := s.db.Where("card_id IN ?", cardIDs).Find(&tasks).Error; err != nil {
			return nil, err
		}
		for _, t := range tasks {
			tasksByCard[t.CardID] = append(tasksByCard[t.CardID], t)
		}

		var tags []models.Tag
		if err := s.db.Where("card_id IN ?", cardIDs).Find(&tags).Error; err != nil {
			return nil, err
		}
		for _, t := range tags {
			tagsByCard[t.CardID] = append(tagsByCard[t.CardID], t)
		}

		var comments []models.Comment
		if err := s.db.Where("card_id IN ?", cardIDs).
			Order("created_at ASC, id ASC").
			Find(&comments).Error; err != nil {
			return nil, err
		}
		for _, c := range comments {
			commentsByCard[c.CardID] = append(commentsByCard[c.CardID], c)
		}
	}

	cardsByList := make(map[uint][]CardView)
	for i := range cards {
		c := &cards[i]
		view := CardView{
			CardID:      c.ID,
			Title:       c.Title,
			Description: c.Description,
			Position:    c.Position,
			ImageURL:    s.uploads.URLFor(c.ImagePath),
			StartDate:   c.StartDate,
			EndDate:     c.EndDate,
			Tasks:       orEmptyTasks(tasksByCard[c.ID]),
			Tags:        orEmptyTags(tagsByCard[c.ID]),
			Comments:    orEmptyComments(commentsByCard[c.ID]),
		}
		cardsByList[c.ListID] = append(cardsByList[c.ListID], view)
	}

	views := make([]ListView, 0, len(lists))
	for _, l := range lists {
		cardViews := cardsByList[l.ID]
		if cardViews == nil {
			cardViews = []CardView{}
		}
		sort.SliceStable(cardViews, func(i, j int) bool {
			return cardViews[i].Position < cardViews[j].Position
		})
		views = append(views, ListView{
			ListID:   l.ID,
			Name:     l.Name,
			Position: l.Position,
			Cards:    cardViews,
		})
	}
	return views, nil
}

// Share issues a viewer token bound to the board's external id.
func (s *BoardService) Share(externalID string) (string, error) {
	var count int64
	if err := s.db.Model(&models.Board{}).
		Where("external_id = ?", externalID).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "", response.NewNotFound("board not found")
	}

	return utils.GenerateViewerToken(externalID, s.jwtCfg.ExpireHour)
}

// Close recomputes the board's progress and closes it. A board below 100%
// fails the precondition and reports the current progress.
func (s *BoardService) Close(externalID string) (*BoardRow, error) {
	var boardID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var board models.Board
		if err := tx.Where("external_id = ?", externalID).First(&board).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("board not found")
			}
			return err
		}
		boardID = board.ID

		progress, err := ComputeProgress(tx, board.ID)
		if err != nil {
			return err
		}
		if progress < 100 {
			return response.NewPreconditionFailed("board not fully done",
				map[string]interface{}{"progress": progress})
		}

		return tx.Model(&board).Updates(map[string]interface{}{
			"status":   models.BoardClosed,
			"progress": 100,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.rowByID(boardID)
}

// rowByID reloads a board with its members and maps it to the client row.
func (s *BoardService) rowByID(boardID uint) (*BoardRow, error) {
	var board models.Board
	if err := s.db.Preload("Members").First(&board, boardID).Error; err != nil {
		return nil, err
	}
	row := boardRow(&board)
	return &row, nil
}

// attachMembers inserts membership rows, silently skipping duplicates.
func attachMembers(tx *gorm.DB, boardID uint, memberIDs []uint) error {
	for _, userID := range memberIDs {
		member := models.BoardMember{BoardID: boardID, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
			return err
		}
	}
	return nil
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func orEmptyTasks(t []models.Task) []models.Task {
	if t == nil {
		return []models.Task{}
	}
	return t
}

func orEmptyTags(t []models.Tag) []models.Tag {
	if t == nil {
		return []models.Tag{}
	}
	return t
}

func orEmptyComments(c []models.Comment) []models.Comment {
	if c == nil {
		return []models.Comment{}
	}
	return c
}
