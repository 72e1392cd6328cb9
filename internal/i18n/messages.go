package i18n

// Message keys.
const (
	// Quiz titles and labels.
	TitleTopic       = "Exercise: %s"
	TitleImage       = "Exercise from uploaded file"
	TitleManual      = "Self-made exercise"
	GradeLabel       = "Grade %d"
	DefaultImageNote = "Create questions from this material"

	// Creator errors.
	ErrEnterTopic        = "Please enter a topic."
	ErrAddQuestion       = "Add at least one question."
	ErrFillRows          = "Please fill in both the question and the answer for every row."
	ErrGenerateTopic     = "Could not create questions with AI. Please try again."
	ErrGenerateImage     = "Could not process the image. Please try again."
	ErrNoUsableQuestions = "The AI returned no usable questions. Please try again."
	ErrAIUnavailable     = "AI is not configured. Set an API key to enable it."
	ErrChooseImage       = "Please choose an image file."
	ErrUnsupportedImage  = "Unsupported file. Use a JPG, PNG, WEBP, GIF or HEIC image."
	ErrImageTooLarge     = "The image is too large."
	ErrReadImage         = "Could not read the file."
	ErrStoreUnavailable  = "History is disabled."

	// Home.
	AppName         = "Math Quiz"
	AppTagline      = "Practice math for grades 6 to 9"
	MenuAICreate    = "Create with AI"
	MenuManual      = "Type questions yourself"
	MenuUpload      = "Create from an image"
	MenuHistory     = "History"
	MenuExit        = "Exit"
	HintAICreate    = "Pick a grade and a topic"
	HintManual      = "Write up to 15 questions"
	HintUpload      = "Use a photo of a worksheet or lesson"
	HintHistory     = "Past results"
	HintExit        = "Close the app"
	AIDisabledBadge = "(no AI key)"

	// Creator screens.
	ScreenAICreate    = MenuAICreate
	ScreenManual      = "Type questions"
	ScreenUpload      = "Create from image"
	FieldGrade        = "Grade"
	FieldTopic        = "Topic"
	FieldTopicHint    = "e.g. Fractions, Linear equations"
	FieldImagePath    = "Image file"
	FieldImageHint    = "/path/to/worksheet.jpg"
	FieldNote         = "Note (optional)"
	FieldNoteHint     = "Leave empty to create questions from the whole material"
	FieldQuestion     = "Question %d"
	FieldAnswer       = "Answer"
	ButtonCreate      = "Create now"
	ButtonAddQuestion = "+ Add question (%d/%d)"
	ButtonFinish      = "Finish & start"
	Generating        = "Creating questions..."
	Analyzing         = "Analyzing the material and creating questions..."

	// Taking.
	ScreenTaking    = "Quiz"
	AnswerHint      = "Your answer..."
	ButtonSubmit    = "Submit & see results"
	QuestionCounter = "%d questions"
	AnsweredCounter = "Answered %d/%d"

	// Results.
	ScreenResults  = "Results"
	ScoreLine      = "You got %d of %d questions right."
	Correct        = "Correct"
	Wrong          = "Wrong"
	YourAnswer     = "Your answer:"
	CorrectAnswer  = "Correct answer:"
	BlankAnswer    = "(blank)"
	ButtonHome     = "Back to home"
	ReviewHeading  = "Review"
	SavedToHistory = "Saved to history."

	// History.
	ScreenHistory  = MenuHistory
	HistoryEmpty   = "No results yet."
	HistoryLoading = "Loading..."

	// Key hints.
	KeyBack     = "Back"
	KeyNext     = "Next field"
	KeySelect   = "Select"
	KeyNavigate = "Navigate"
	KeyQuit     = "Quit"
	KeyRemove   = "Remove last"

	TerminalTooSmall = "Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d"
)

var vietnamese = map[string]string{
	TitleTopic:       "Bài tập: %s",
	TitleImage:       "Bài tập từ tệp tải lên",
	TitleManual:      "Bài tập tự soạn",
	GradeLabel:       "Lớp %d",
	DefaultImageNote: "Tạo câu hỏi từ tài liệu này",

	ErrEnterTopic:        "Vui lòng nhập chủ đề.",
	ErrAddQuestion:       "Hãy thêm ít nhất một câu hỏi.",
	ErrFillRows:          "Vui lòng điền đầy đủ câu hỏi và đáp án cho các dòng đã tạo.",
	ErrGenerateTopic:     "Không thể tạo câu hỏi từ AI. Vui lòng thử lại.",
	ErrGenerateImage:     "Không thể xử lý hình ảnh. Vui lòng thử lại.",
	ErrNoUsableQuestions: "AI không trả về câu hỏi hợp lệ. Vui lòng thử lại.",
	ErrAIUnavailable:     "Chưa cấu hình AI. Hãy đặt khóa API để sử dụng.",
	ErrChooseImage:       "Vui lòng chọn tệp hình ảnh.",
	ErrUnsupportedImage:  "Tệp không được hỗ trợ. Hãy dùng ảnh JPG, PNG, WEBP, GIF hoặc HEIC.",
	ErrImageTooLarge:     "Hình ảnh quá lớn.",
	ErrReadImage:         "Không thể đọc tệp.",
	ErrStoreUnavailable:  "Lịch sử đang tắt.",

	AppName:         "Toán Trắc Nghiệm",
	AppTagline:      "Luyện toán lớp 6 đến lớp 9",
	MenuAICreate:    "Tạo bằng AI",
	MenuManual:      "Tự soạn câu hỏi",
	MenuUpload:      "Tạo từ hình ảnh",
	MenuHistory:     "Lịch sử",
	MenuExit:        "Thoát",
	HintAICreate:    "Chọn lớp và chủ đề",
	HintManual:      "Soạn tối đa 15 câu hỏi",
	HintUpload:      "Dùng ảnh chụp phiếu bài tập hoặc bài học",
	HintHistory:     "Kết quả đã làm",
	HintExit:        "Đóng ứng dụng",
	AIDisabledBadge: "(chưa có khóa AI)",

	ScreenManual:      "Tự soạn câu hỏi",
	ScreenUpload:      "Tạo từ hình ảnh",
	FieldGrade:        "Lớp",
	FieldTopic:        "Chủ đề",
	FieldTopicHint:    "Ví dụ: Phân số, Phương trình bậc nhất",
	FieldImagePath:    "Tệp hình ảnh",
	FieldImageHint:    "/duong/dan/phieu-bai-tap.jpg",
	FieldNote:         "Ghi chú (không bắt buộc)",
	FieldNoteHint:     "Để trống để tạo câu hỏi từ toàn bộ tài liệu",
	FieldQuestion:     "Câu %d",
	FieldAnswer:       "Đáp án",
	ButtonCreate:      "Tạo ngay",
	ButtonAddQuestion: "+ Thêm câu hỏi (%d/%d)",
	ButtonFinish:      "Hoàn tất & làm bài",
	Generating:        "Đang tạo câu hỏi...",
	Analyzing:         "Đang phân tích tài liệu và tạo câu hỏi...",

	ScreenTaking:    "Làm bài",
	AnswerHint:      "Câu trả lời của bạn...",
	ButtonSubmit:    "Nộp bài & xem kết quả",
	QuestionCounter: "%d câu hỏi",
	AnsweredCounter: "Đã trả lời %d/%d",

	ScreenResults:  "Kết quả",
	ScoreLine:      "Bạn trả lời đúng %d trên %d câu.",
	Correct:        "Đúng",
	Wrong:          "Sai",
	YourAnswer:     "Bạn trả lời:",
	CorrectAnswer:  "Đáp án đúng:",
	BlankAnswer:    "(bỏ trống)",
	ButtonHome:     "Về trang chủ",
	ReviewHeading:  "Xem lại",
	SavedToHistory: "Đã lưu vào lịch sử.",

	HistoryEmpty:   "Chưa có kết quả nào.",
	HistoryLoading: "Đang tải...",

	KeyBack:     "Quay lại",
	KeyNext:     "Ô tiếp theo",
	KeySelect:   "Chọn",
	KeyNavigate: "Di chuyển",
	KeyQuit:     "Thoát",
	KeyRemove:   "Xóa dòng cuối",

	TerminalTooSmall: "Cửa sổ quá nhỏ!\n\nHãy mở rộng tối thiểu\n%d x %d\n\nHiện tại: %d x %d",
}
