package notice

// Notice is one board entry. The board is static seed data: read-only, held
// in memory, never persisted.
type Notice struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	IsImportant bool   `json:"isImportant"`
}

// Service serves the fixed notice board.
type Service struct {
	notices []Notice
}

func NewService() *Service {
	return &Service{notices: seedNotices()}
}

// List returns the whole board in publication order.
func (s *Service) List() []Notice {
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// Important returns up to limit must-read notices for the dashboard.
func (s *Service) Important(limit int) []Notice {
	if limit <= 0 {
		return []Notice{}
	}
	out := make([]Notice, 0, limit)
	for _, n := range s.notices {
		if !n.IsImportant {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out
}

func seedNotices() []Notice {
	return []Notice{
		{
			ID:          "1",
			Title:       "First-half fire safety training",
			Content:     "All staff are required to attend fire safety training in the auditorium on June 15 at 4 PM.",
			Author:      "Administrative Support Team",
			Date:        "2024-05-15",
			IsImportant: true,
		},
		{
			ID:          "2",
			Title:       "New medical imaging equipment",
			Content:     "A new MRI unit has been installed; training sessions will be scheduled per department.",
			Author:      "Biomedical Engineering Team",
			Date:        "2024-05-18",
			IsImportant: false,
		},
		{
			ID:          "3",
			Title:       "Summer leave request window",
			Content:     "Coordinate schedules within your department and submit leave requests by the end of May.",
			Author:      "Human Resources",
			Date:        "2024-05-10",
			IsImportant: true,
		},
	}
}
