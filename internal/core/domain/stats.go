package domain

// Totals counts the main tables for the admin dashboard.
type Totals struct {
	Users     int64 `json:"usuarios"   db:"usuarios"`
	Admins    int64 `json:"admins"     db:"admins"`
	Exercises int64 `json:"exercicios" db:"exercicios"`
	Lists     int64 `json:"listas"     db:"listas"`
}

// ExerciseUsage is how many workout lists reference an exercise.
type ExerciseUsage struct {
	Name       string `json:"nome"        db:"nome"`
	Muscle     string `json:"musculo"     db:"musculo"`
	Difficulty string `json:"dificuldade" db:"dificuldade"`
	Uses       int64  `json:"vezes_usado" db:"vezes_usado"`
}

// MuscleCount is the number of exercises targeting a muscle group.
type MuscleCount struct {
	Muscle string `json:"musculo" db:"musculo"`
	Total  int64  `json:"total"   db:"total"`
}

// Dashboard is the payload of the admin dashboard.
type Dashboard struct {
	Totals           Totals           `json:"totais"`
	MostUsed         []ExerciseUsage  `json:"exerciciosMaisUsados"`
	ByMuscle         []MuscleCount    `json:"distribuicaoPorMusculo"`
	RecentActivities []ActivityRecord `json:"atividadesRecentes"`
}

// ActivityStats is the activity breakdown served to the reports page.
type ActivityStats struct {
	ByDay      []DailyActivity `json:"porDia"`
	TopActions []ActionCount   `json:"acoesMaisFrequentes"`
}

// SexCount is the number of users declaring a given sex.
type SexCount struct {
	Sex   string `json:"sexo"  db:"sexo"`
	Total int64  `json:"total" db:"total"`
}

// BodyStats aggregates height (metres) and weight (kg). The pointers are nil
// when no user filled the column in.
type BodyStats struct {
	AvgHeight *float64 `json:"altura_media"    db:"altura_media"`
	AvgWeight *float64 `json:"peso_media"      db:"peso_media"`
	MinHeight *float64 `json:"altura_min"      db:"altura_min"`
	MaxHeight *float64 `json:"altura_max"      db:"altura_max"`
	MinWeight *float64 `json:"peso_min"        db:"peso_min"`
	MaxWeight *float64 `json:"peso_max"        db:"peso_max"`
	WithData  int64    `json:"total_com_dados" db:"total_com_dados"`
}

// BMIStats buckets users by body mass index. Users without both height and
// weight are left out.
type BMIStats struct {
	Average     *float64 `json:"imc_medio"   db:"imc_medio"`
	Underweight int64    `json:"abaixo_peso" db:"abaixo_peso"`
	Normal      int64    `json:"peso_normal" db:"peso_normal"`
	Overweight  int64    `json:"sobrepeso"   db:"sobrepeso"`
	Obese       int64    `json:"obesidade"   db:"obesidade"`
}

// BMI limits, upper bound exclusive.
const (
	BMIUnderweight = 18.5
	BMINormal      = 25.0
	BMIOverweight  = 30.0
)

// ListStats describes how users build workout lists.
type ListStats struct {
	UsersWithLists int64    `json:"usuarios_com_listas"   db:"usuarios_com_listas"`
	TotalLists     int64    `json:"total_listas_usuarios" db:"total_listas_usuarios"`
	AvgPerUser     *float64 `json:"media_listas"          db:"media_listas"`
}

// UserListCount is a user and the number of lists they own.
type UserListCount struct {
	Name  string `json:"nome"         db:"nome"`
	Email string `json:"email"        db:"email"`
	Lists int64  `json:"total_listas" db:"total_listas"`
}

// UserStats is the payload of the user statistics page.
type UserStats struct {
	BySex    []SexCount      `json:"distribuicaoPorSexo"`
	Body     BodyStats       `json:"estatisticasCorpo"`
	BMI      BMIStats        `json:"imcStats"`
	Lists    ListStats       `json:"listasStats"`
	TopUsers []UserListCount `json:"topUsuarios"`
}

// CategoryCount is the number of exercises sharing a catalogue attribute
// (equipment, difficulty or type).
type CategoryCount struct {
	Category string `json:"categoria" db:"categoria"`
	Total    int64  `json:"total"     db:"total"`
}

// ExerciseUtilization compares the catalogue with what lists actually use.
type ExerciseUtilization struct {
	Total  int64 `json:"total_exercicios"      db:"total_exercicios"`
	Used   int64 `json:"exercicios_usados"     db:"exercicios_usados"`
	Unused int64 `json:"exercicios_nao_usados" db:"exercicios_nao_usados"`
}

// UnusedExercise is a catalogue entry no list references.
type UnusedExercise struct {
	Name       string `json:"nome"        db:"nome"`
	Muscle     string `json:"musculo"     db:"musculo"`
	Difficulty string `json:"dificuldade" db:"dificuldade"`
	Type       string `json:"tipo"        db:"tipo"`
}

// ExerciseStats is the payload of the exercise statistics page.
type ExerciseStats struct {
	ByMuscle     []MuscleCount       `json:"distribuicaoPorMusculo"`
	ByEquipment  []CategoryCount     `json:"distribuicaoPorEquipamento"`
	ByDifficulty []CategoryCount     `json:"distribuicaoPorDificuldade"`
	ByType       []CategoryCount     `json:"distribuicaoPorTipo"`
	Utilization  ExerciseUtilization `json:"taxaUtilizacao"`
	Popular      []ExerciseUsage     `json:"exerciciosPopulares"`
	Unused       []UnusedExercise    `json:"exerciciosNaoUsados"`
}
