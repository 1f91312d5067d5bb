package templates

import "resume-builder/internal/model"

const (
	fontSans     = `"Helvetica Neue", Helvetica, Arial, sans-serif`
	fontInter    = `Inter, "Segoe UI", Roboto, Arial, sans-serif`
	fontSerif    = `Georgia, "Times New Roman", serif`
	fontGaramond = `"EB Garamond", Garamond, Georgia, serif`
	fontMono     = `"JetBrains Mono", "Fira Code", Menlo, Consolas, monospace`
	fontGrotesk  = `"Space Grotesk", "Helvetica Neue", Arial, sans-serif`
	fontJapanese = `"Noto Sans JP", "Hiragino Kaku Gothic ProN", "Yu Gothic", sans-serif`
	fontDisplay  = `"Playfair Display", Didot, Georgia, serif`
)

var (
	asideProfile = []model.Section{model.SectionSkills, model.SectionLanguages, model.SectionCertifications}
	asideCompact = []model.Section{model.SectionSkills, model.SectionLanguages}
	asideWide    = []model.Section{model.SectionSummary, model.SectionSkills, model.SectionLanguages, model.SectionCertifications}
)

var catalog = []Template{
	{
		ID: "professional", Name: "Professional", Category: "professional",
		Description: "Classic single column with navy accents and ruled section headings.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#1e3a8a", Text: "#1f2937", Muted: "#6b7280", Background: "#ffffff",
			BodyFont: fontSans, HeadingFont: fontSans, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "line", Skills: "tags", Density: "normal"},
	},
	{
		ID: "modern", Name: "Modern", Category: "modern",
		Description: "Teal sidebar on the left holding skills and languages.",
		Layout:      LayoutSidebarLeft, Aside: asideProfile, Photo: true,
		Style: Style{Accent: "#0d9488", Text: "#111827", Muted: "#6b7280", Background: "#ffffff",
			SidebarBackground: "#f0fdfa", SidebarText: "#134e4a",
			BodyFont: fontInter, HeadingFont: fontInter, HeadingCase: "none", HeaderAlign: "left",
			Divider: "none", Skills: "gauge", Density: "normal"},
	},
	{
		ID: "minimal", Name: "Minimal", Category: "minimal",
		Description: "Black on white, generous whitespace, no rules.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#111111", Text: "#222222", Muted: "#8a8a8a", Background: "#ffffff",
			BodyFont: fontInter, HeadingFont: fontInter, HeadingCase: "small-caps", HeaderAlign: "left",
			Divider: "none", Skills: "list", Density: "relaxed"},
	},
	{
		ID: "creative", Name: "Creative", Category: "creative",
		Description: "Coral banner header with monogram and tag skills.",
		Layout:      LayoutBanner, Photo: true,
		Style: Style{Accent: "#f43f5e", Text: "#1f2937", Muted: "#9ca3af", Background: "#fffbfb",
			BodyFont: fontGrotesk, HeadingFont: fontGrotesk, HeadingCase: "none", HeaderAlign: "left",
			Divider: "block", Skills: "tags", Density: "normal", Decoration: "monogram"},
	},
	{
		ID: "executive", Name: "Executive", Category: "professional",
		Description: "Centered serif header with double rules for senior roles.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#7c2d12", Text: "#1c1917", Muted: "#78716c", Background: "#ffffff",
			BodyFont: fontSerif, HeadingFont: fontSerif, HeadingCase: "small-caps", HeaderAlign: "center",
			Divider: "thick", Skills: "list", Density: "normal"},
	},
	{
		ID: "tech", Name: "Tech", Category: "technical",
		Description: "Dark right sidebar with skill gauges for engineering roles.",
		Layout:      LayoutSidebarRight, Aside: asideProfile,
		Style: Style{Accent: "#22d3ee", Text: "#0f172a", Muted: "#64748b", Background: "#ffffff",
			SidebarBackground: "#0f172a", SidebarText: "#e2e8f0",
			BodyFont: fontInter, HeadingFont: fontMono, HeadingCase: "none", HeaderAlign: "left",
			Divider: "line", Skills: "gauge", Density: "compact"},
	},
	{
		ID: "academic", Name: "Academic", Category: "academic",
		Description: "Curriculum vitae styling with education first and serif type.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#1f2937", Text: "#111827", Muted: "#4b5563", Background: "#ffffff",
			BodyFont: fontGaramond, HeadingFont: fontGaramond, HeadingCase: "small-caps", HeaderAlign: "center",
			Divider: "line", Skills: "list", Density: "relaxed"},
	},
	{
		ID: "artistic", Name: "Artistic", Category: "creative",
		Description: "Display serif headings over a soft lavender split layout.",
		Layout:      LayoutSplit, Aside: asideWide, Photo: true,
		Style: Style{Accent: "#7c3aed", Text: "#1e1b4b", Muted: "#8b5cf6", Background: "#faf5ff",
			SidebarBackground: "#ede9fe", SidebarText: "#3b0764",
			BodyFont: fontInter, HeadingFont: fontDisplay, HeadingCase: "none", HeaderAlign: "center",
			Divider: "dotted", Skills: "dots", Density: "normal", Decoration: "frame"},
	},
	{
		ID: "blueprint", Name: "Blueprint", Category: "technical",
		Description: "White on blueprint blue with a drafting grid.",
		Layout:      LayoutSidebarLeft, Aside: asideProfile,
		Style: Style{Accent: "#93c5fd", Text: "#0b1f44", Muted: "#3b5b8f", Background: "#ffffff",
			SidebarBackground: "#1d4ed8", SidebarText: "#eff6ff",
			BodyFont: fontMono, HeadingFont: fontMono, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "dotted", Skills: "gauge", Density: "compact", Decoration: "grid"},
	},
	{
		ID: "bold", Name: "Bold", Category: "modern",
		Description: "Heavy black banner and oversized headings.",
		Layout:      LayoutBanner,
		Style: Style{Accent: "#111827", Text: "#111827", Muted: "#4b5563", Background: "#ffffff",
			BodyFont: fontGrotesk, HeadingFont: fontGrotesk, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "block", Skills: "tags", Density: "normal"},
	},
	{
		ID: "clean", Name: "Clean", Category: "minimal",
		Description: "Light grey hairlines and a quiet blue accent.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#2563eb", Text: "#1f2937", Muted: "#9ca3af", Background: "#ffffff",
			BodyFont: fontInter, HeadingFont: fontInter, HeadingCase: "none", HeaderAlign: "left",
			Divider: "line", Skills: "tags", Density: "relaxed"},
	},
	{
		ID: "corner-accent", Name: "Corner Accent", Category: "modern",
		Description: "Amber triangles in the page corners frame a single column.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#d97706", Text: "#1f2937", Muted: "#78716c", Background: "#ffffff",
			BodyFont: fontSans, HeadingFont: fontSans, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "line", Skills: "dots", Density: "normal", Decoration: "corner"},
	},
	{
		ID: "developer", Name: "Developer", Category: "technical",
		Description: "Terminal green on charcoal headings with monospace details.",
		Layout:      LayoutSidebarRight, Aside: asideCompact,
		Style: Style{Accent: "#16a34a", Text: "#18181b", Muted: "#71717a", Background: "#ffffff",
			SidebarBackground: "#f4f4f5", SidebarText: "#18181b",
			BodyFont: fontInter, HeadingFont: fontMono, HeadingCase: "none", HeaderAlign: "left",
			Divider: "dotted", Skills: "tags", Density: "compact"},
	},
	{
		ID: "elegant", Name: "Elegant", Category: "professional",
		Description: "Centered Garamond with gold hairlines.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#b08d57", Text: "#2b2b2b", Muted: "#8c8c8c", Background: "#fffdf8",
			BodyFont: fontGaramond, HeadingFont: fontDisplay, HeadingCase: "small-caps", HeaderAlign: "center",
			Divider: "line", Skills: "list", Density: "relaxed"},
	},
	{
		ID: "engineer", Name: "Engineer", Category: "technical",
		Description: "Slate sidebar with dotted skill ratings and compact spacing.",
		Layout:      LayoutSidebarLeft, Aside: asideProfile,
		Style: Style{Accent: "#475569", Text: "#0f172a", Muted: "#64748b", Background: "#ffffff",
			SidebarBackground: "#e2e8f0", SidebarText: "#0f172a",
			BodyFont: fontSans, HeadingFont: fontSans, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "thick", Skills: "dots", Density: "compact"},
	},
	{
		ID: "gradient", Name: "Gradient", Category: "creative",
		Description: "Indigo-to-pink gradient banner and rounded tags.",
		Layout:      LayoutBanner, Photo: true,
		Style: Style{Accent: "#6366f1", Text: "#1e1b4b", Muted: "#6b7280", Background: "#ffffff",
			BodyFont: fontInter, HeadingFont: fontGrotesk, HeadingCase: "none", HeaderAlign: "center",
			Divider: "none", Skills: "tags", Density: "normal", Decoration: "gradient"},
	},
	{
		ID: "infographic", Name: "Infographic", Category: "creative",
		Description: "Split layout with skill gauges and language dot rows.",
		Layout:      LayoutSplit, Aside: asideWide, Photo: true,
		Style: Style{Accent: "#0ea5e9", Text: "#0c4a6e", Muted: "#64748b", Background: "#ffffff",
			SidebarBackground: "#e0f2fe", SidebarText: "#0c4a6e",
			BodyFont: fontInter, HeadingFont: fontGrotesk, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "block", Skills: "gauge", Density: "compact"},
	},
	{
		ID: "japanese", Name: "Japanese", Category: "minimal",
		Description: "Rirekisho-inspired ruled grid with vermilion seal accent.",
		Layout:      LayoutSingle, Photo: true,
		Style: Style{Accent: "#c2410c", Text: "#1c1917", Muted: "#57534e", Background: "#ffffff",
			BodyFont: fontJapanese, HeadingFont: fontJapanese, HeadingCase: "none", HeaderAlign: "left",
			Divider: "thick", Skills: "list", Density: "normal", Decoration: "seal"},
	},
	{
		ID: "magazine", Name: "Magazine", Category: "creative",
		Description: "Editorial split with a display serif masthead.",
		Layout:      LayoutSplit, Aside: asideProfile,
		Style: Style{Accent: "#be123c", Text: "#1f2937", Muted: "#6b7280", Background: "#ffffff",
			SidebarBackground: "#fff1f2", SidebarText: "#4c0519",
			BodyFont: fontSerif, HeadingFont: fontDisplay, HeadingCase: "upper", HeaderAlign: "center",
			Divider: "thick", Skills: "list", Density: "normal"},
	},
	{
		ID: "matrix", Name: "Matrix", Category: "technical",
		Description: "Green-on-black sidebar with a scanline texture.",
		Layout:      LayoutSidebarLeft, Aside: asideProfile,
		Style: Style{Accent: "#22c55e", Text: "#052e16", Muted: "#4d7c0f", Background: "#ffffff",
			SidebarBackground: "#020617", SidebarText: "#4ade80",
			BodyFont: fontMono, HeadingFont: fontMono, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "dotted", Skills: "gauge", Density: "compact", Decoration: "scanlines"},
	},
	{
		ID: "metro", Name: "Metro", Category: "modern",
		Description: "Flat color tiles for section headings.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#0078d4", Text: "#1f1f1f", Muted: "#605e5c", Background: "#ffffff",
			BodyFont: `"Segoe UI", ` + fontSans, HeadingFont: `"Segoe UI", ` + fontSans, HeadingCase: "none", HeaderAlign: "left",
			Divider: "block", Skills: "tags", Density: "normal"},
	},
	{
		ID: "ribbon", Name: "Ribbon", Category: "creative",
		Description: "Section titles sit on folded ribbons.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#9333ea", Text: "#1f2937", Muted: "#6b7280", Background: "#ffffff",
			BodyFont: fontSans, HeadingFont: fontGrotesk, HeadingCase: "upper", HeaderAlign: "center",
			Divider: "none", Skills: "tags", Density: "normal", Decoration: "ribbon"},
	},
	{
		ID: "sebastian", Name: "Sebastian", Category: "professional",
		Description: "Warm two-column with a burgundy rule under the name.",
		Layout:      LayoutSidebarRight, Aside: asideProfile,
		Style: Style{Accent: "#881337", Text: "#27272a", Muted: "#71717a", Background: "#ffffff",
			SidebarBackground: "#fafafa", SidebarText: "#27272a",
			BodyFont: fontSerif, HeadingFont: fontSans, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "thick", Skills: "list", Density: "normal"},
	},
	{
		ID: "sidebar-left", Name: "Sidebar Left", Category: "modern",
		Description: "Photo and contact in a dark left sidebar.",
		Layout:      LayoutSidebarLeft, Aside: asideProfile, Photo: true,
		Style: Style{Accent: "#f59e0b", Text: "#1f2937", Muted: "#6b7280", Background: "#ffffff",
			SidebarBackground: "#1f2937", SidebarText: "#f9fafb",
			BodyFont: fontSans, HeadingFont: fontSans, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "line", Skills: "gauge", Density: "normal"},
	},
	{
		ID: "sidebar-right", Name: "Sidebar Right", Category: "modern",
		Description: "Light right sidebar keeps experience first.",
		Layout:      LayoutSidebarRight, Aside: asideProfile, Photo: true,
		Style: Style{Accent: "#4f46e5", Text: "#1f2937", Muted: "#6b7280", Background: "#ffffff",
			SidebarBackground: "#eef2ff", SidebarText: "#1e1b4b",
			BodyFont: fontInter, HeadingFont: fontInter, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "line", Skills: "dots", Density: "normal"},
	},
	{
		ID: "simple", Name: "Simple", Category: "minimal",
		Description: "Plain ATS-friendly document with no decoration.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#000000", Text: "#000000", Muted: "#444444", Background: "#ffffff",
			BodyFont: fontSans, HeadingFont: fontSans, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "line", Skills: "list", Density: "compact"},
	},
	{
		ID: "split", Name: "Split", Category: "modern",
		Description: "Two even columns under a full-width header.",
		Layout:      LayoutSplit, Aside: asideWide,
		Style: Style{Accent: "#059669", Text: "#111827", Muted: "#6b7280", Background: "#ffffff",
			SidebarBackground: "#ffffff", SidebarText: "#111827",
			BodyFont: fontInter, HeadingFont: fontInter, HeadingCase: "upper", HeaderAlign: "left",
			Divider: "line", Skills: "tags", Density: "normal"},
	},
	{
		ID: "swiss", Name: "Swiss", Category: "minimal",
		Description: "International style: grid, red accent, flush-left Helvetica.",
		Layout:      LayoutSidebarLeft, Aside: []model.Section{model.SectionSkills, model.SectionLanguages, model.SectionEducation},
		Style: Style{Accent: "#dc2626", Text: "#0a0a0a", Muted: "#525252", Background: "#ffffff",
			SidebarBackground: "#ffffff", SidebarText: "#0a0a0a",
			BodyFont: fontSans, HeadingFont: fontSans, HeadingCase: "none", HeaderAlign: "left",
			Divider: "thick", Skills: "list", Density: "normal"},
	},
	{
		ID: "wyatt", Name: "Wyatt", Category: "professional",
		Description: "Stripe down the left edge and a strong name block.",
		Layout:      LayoutSingle,
		Style: Style{Accent: "#0f766e", Text: "#1f2937", Muted: "#6b7280", Background: "#ffffff",
			BodyFont: fontSans, HeadingFont: fontSerif, HeadingCase: "none", HeaderAlign: "left",
			Divider: "line", Skills: "tags", Density: "normal", Decoration: "stripe"},
	},
	{
		ID: "amelia", Name: "Amelia", Category: "creative",
		Description: "Soft blush sidebar with round photo and dotted ratings.",
		Layout:      LayoutSidebarLeft, Aside: asideProfile, Photo: true,
		Style: Style{Accent: "#db2777", Text: "#3f3f46", Muted: "#a1a1aa", Background: "#ffffff",
			SidebarBackground: "#fdf2f8", SidebarText: "#500724",
			BodyFont: fontInter, HeadingFont: fontDisplay, HeadingCase: "none", HeaderAlign: "center",
			Divider: "dotted", Skills: "dots", Density: "relaxed"},
	},
}
